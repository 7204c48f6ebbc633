// Package ventas contiene la lógica pura de análisis de ventas: normalización, filtro por
// fechas, agregación para gráficos y estadísticas. No hace I/O; los datos llegan ya descargados.
package ventas

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
)

// IVAChile tasa de IVA usada para derivar el neto cuando el backend no lo envía.
var IVAChile = decimal.RequireFromString("0.19")

// CatalogoMetodosPago id de tipo de venta => nombre. Se arma siempre desde GET /api/tipos-venta.
type CatalogoMetodosPago map[entity.ID]string

// NuevoCatalogo construye el catálogo a partir de los tipos de venta del backend.
func NuevoCatalogo(tipos []entity.TipoVenta) CatalogoMetodosPago {
	c := make(CatalogoMetodosPago, len(tipos))
	for _, t := range tipos {
		if t.ID.Empty() {
			continue
		}
		c[t.ID] = strings.TrimSpace(t.Nombre)
	}
	return c
}

// Etiqueta nombre del método de pago; "Desconocido (<id>)" si no está en el catálogo.
func (c CatalogoMetodosPago) Etiqueta(id entity.ID) string {
	if nombre, ok := c[id]; ok && nombre != "" {
		return nombre
	}
	return fmt.Sprintf("Desconocido (%s)", id)
}

// VentaNormalizada venta lista para mostrar. Se deriva en cada consulta y no se persiste.
type VentaNormalizada struct {
	ID              entity.ID       `json:"id"`
	Fecha           string          `json:"fecha"`
	Dia             string          `json:"dia"`
	MontoBruto      decimal.Decimal `json:"monto_bruto"`
	MontoNeto       decimal.Decimal `json:"monto_neto"`
	TipoVentaID     entity.ID       `json:"tipo_venta_id"`
	AlmacenID       entity.ID       `json:"almacen_id"`
	MetodoPago      string          `json:"metodoPago"`
	MontoNetoDivisa decimal.Decimal `json:"montoNetoDivisa"`
}

// CoercerMonto convierte un monto crudo a decimal. Ausente => (0, false) sin log;
// no numérico => (0, false) con warning. Nunca falla.
func CoercerMonto(m entity.MontoCrudo, campo string) (decimal.Decimal, bool) {
	if !m.Presente {
		return decimal.Zero, false
	}
	texto := strings.TrimSpace(m.Texto)
	d, err := decimal.NewFromString(texto)
	if err != nil {
		log.Warn().Str("campo", campo).Str("valor", m.Texto).Msg("monto no numérico, se usa 0")
		return decimal.Zero, false
	}
	return d, true
}

// Normalizador aplica catálogo, IVA y tasa de cambio a las ventas de una consulta.
type Normalizador struct {
	Metodos CatalogoMetodosPago
	// Tasa CLP por USD; nil si no se pudo obtener.
	Tasa *decimal.Decimal
	// IVA; nil usa IVAChile. Un cero explícito deja el neto igual al bruto.
	IVA *decimal.Decimal
}

// Normalizar atajo con el IVA por defecto.
func Normalizar(v entity.Venta, metodos CatalogoMetodosPago, tasa *decimal.Decimal) VentaNormalizada {
	return Normalizador{Metodos: metodos, Tasa: tasa}.Normalizar(v)
}

// Normalizar convierte una venta cruda.
func (n Normalizador) Normalizar(v entity.Venta) VentaNormalizada {
	iva := IVAChile
	if n.IVA != nil {
		iva = *n.IVA
	}

	bruto, brutoOK := CoercerMonto(v.MontoBruto, "monto_bruto")
	neto, netoOK := CoercerMonto(v.MontoNeto, "monto_neto")
	if !v.MontoNeto.Presente && brutoOK {
		neto = bruto.Div(decimal.NewFromInt(1).Add(iva)).Round(2)
		netoOK = true
	}

	dia, _ := periodo.DiaCanonico(v.Fecha)

	return VentaNormalizada{
		ID:              v.ID,
		Fecha:           v.Fecha,
		Dia:             dia,
		MontoBruto:      bruto,
		MontoNeto:       neto,
		TipoVentaID:     v.TipoVentaID,
		AlmacenID:       v.AlmacenID,
		MetodoPago:      n.Metodos.Etiqueta(v.TipoVentaID),
		MontoNetoDivisa: montoDivisa(neto, netoOK, n.Tasa),
	}
}

// NormalizarTodas normaliza la lista completa conservando el orden.
func (n Normalizador) NormalizarTodas(vs []entity.Venta) []VentaNormalizada {
	out := make([]VentaNormalizada, 0, len(vs))
	for _, v := range vs {
		out = append(out, n.Normalizar(v))
	}
	return out
}

// montoDivisa round2(neto / tasa); 0 si la tasa o el neto no son válidos. Nunca negativo.
func montoDivisa(neto decimal.Decimal, netoOK bool, tasa *decimal.Decimal) decimal.Decimal {
	if !netoOK || tasa == nil || !tasa.IsPositive() {
		return decimal.Zero
	}
	d := neto.Div(*tasa).Round(2)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
