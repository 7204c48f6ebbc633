package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/ventas"
)

// ConsultaVentas parámetros de GET /api/ventas.
type ConsultaVentas struct {
	Periodo      periodo.Periodo
	Granularidad ventas.Granularidad
	Campo        ventas.Campo
	Rellenar     bool
	Refrescar    bool
}

// AnalisisVentasResponse datos para la vista de ventas y gráficos.
type AnalisisVentasResponse struct {
	Periodo      string                     `json:"periodo"`
	Descripcion  string                     `json:"descripcion"`
	Rango        periodo.Rango              `json:"rango"`
	Granularidad ventas.Granularidad        `json:"granularidad"`
	Campo        ventas.Campo               `json:"campo"`
	Almacen      *entity.Almacen            `json:"almacen"`
	Ventas       []ventas.VentaNormalizada  `json:"ventas"`
	Series       []ventas.Bucket            `json:"series"`
	Estadisticas ventas.Estadisticas        `json:"estadisticas"`
	MetodosPago  []ventas.ResumenMetodoPago `json:"metodosPago"`
	TasaDolar    *decimal.Decimal           `json:"tasaDolar"`
	// Error aviso de lectura fallida; el resto de campos queda vacío pero válido.
	Error string `json:"error,omitempty"`
}

// ListadoVentasResponse tabla de ventas con filtro opcional por día.
type ListadoVentasResponse struct {
	Data           []ventas.VentaNormalizada `json:"data"`
	Fecha          string                    `json:"fecha,omitempty"`
	TotalSinFiltro int                       `json:"total_sin_filtro"`
	Error          string                    `json:"error,omitempty"`
}

// LineaCarritoRequest producto del carrito del punto de venta.
type LineaCarritoRequest struct {
	ProductoID entity.ID       `json:"producto_id" validate:"required"`
	Cantidad   int             `json:"cantidad" validate:"min=1"`
	Valor      decimal.Decimal `json:"valor"`
}

// CrearVentaRequest cierre de venta del punto de venta. El almacén sale de la sesión.
type CrearVentaRequest struct {
	TipoVentaID entity.ID             `json:"tipo_venta_id" validate:"required"`
	Productos   []LineaCarritoRequest `json:"productos" validate:"required,min=1,dive"`
}

// Carrito convierte la petición al carrito de dominio.
func (r CrearVentaRequest) Carrito() ventas.Carrito {
	c := ventas.Carrito{TipoVentaID: r.TipoVentaID, Lineas: make([]ventas.LineaCarrito, 0, len(r.Productos))}
	for _, p := range r.Productos {
		c.Lineas = append(c.Lineas, ventas.LineaCarrito{ProductoID: p.ProductoID, Cantidad: p.Cantidad, Valor: p.Valor})
	}
	return c
}
