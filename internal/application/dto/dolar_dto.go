package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DolarResponse valor del dólar para mostrar.
type DolarResponse struct {
	Valor      decimal.Decimal `json:"valor"`
	Formateado string          `json:"formateado"`
	Fecha      time.Time       `json:"fecha"`
	Fuente     string          `json:"fuente"`
}
