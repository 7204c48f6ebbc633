package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValorDolar tipo de cambio CLP por USD obtenido del proveedor externo.
type ValorDolar struct {
	Valor      decimal.Decimal `json:"valor"`
	Fecha      time.Time       `json:"fecha"`
	ObtenidoEn time.Time       `json:"obtenido_en"`
	Fuente     string          `json:"fuente"`
}

// Vigente indica si el valor se obtuvo dentro de la ventana ttl.
func (v ValorDolar) Vigente(ahora time.Time, ttl time.Duration) bool {
	return !v.ObtenidoEn.IsZero() && ahora.Sub(v.ObtenidoEn) < ttl
}

// Archivo archivo binario descargado (reporte de ventas).
type Archivo struct {
	Nombre      string
	ContentType string
	Contenido   []byte
}
