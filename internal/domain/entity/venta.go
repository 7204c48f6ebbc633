package entity

import "github.com/shopspring/decimal"

// Venta registro de venta tal como lo entrega el backend. Inmutable una vez creada.
type Venta struct {
	ID          ID         `json:"id"`
	Fecha       string     `json:"fecha"`
	MontoBruto  MontoCrudo `json:"monto_bruto"`
	MontoNeto   MontoCrudo `json:"monto_neto"`
	TipoVentaID ID         `json:"tipo_venta_id"`
	AlmacenID   ID         `json:"almacen_id"`
}

// TipoVenta vocabulario de métodos de pago definido por el backend ({id, nombre}).
type TipoVenta struct {
	ID     ID     `json:"id"`
	Nombre string `json:"nombre"`
}

// LineaVenta producto y cantidad dentro de una venta nueva.
type LineaVenta struct {
	ProductoID ID  `json:"producto_id"`
	Cantidad   int `json:"cantidad"`
}

// NuevaVenta cuerpo de POST /api/ventas.
type NuevaVenta struct {
	MontoBruto  decimal.Decimal `json:"monto_bruto"`
	TipoVentaID ID              `json:"tipo_venta_id"`
	AlmacenID   ID              `json:"almacen_id"`
	Productos   []LineaVenta    `json:"productos"`
}
