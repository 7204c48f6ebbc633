package entity

import "github.com/shopspring/decimal"

// Producto ítem de inventario de un almacén.
type Producto struct {
	ID             ID              `json:"id"`
	Nombre         string          `json:"nombre"`
	SKU            string          `json:"sku"`
	Stock          int             `json:"stock"`
	StockMinimo    int             `json:"stock_minimo"`
	Valor          decimal.Decimal `json:"valor"`
	TipoProductoID ID              `json:"tipo_producto_id"`
	AlmacenID      ID              `json:"almacen_id"`
	TipoProducto   *TipoProducto   `json:"tipoProducto,omitempty"`
}

// BajoStock indica si el stock actual no supera el mínimo.
func (p Producto) BajoStock() bool {
	return p.Stock <= p.StockMinimo
}

// TipoProducto categoría de producto ({id, nombre}).
type TipoProducto struct {
	ID     ID     `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoInput cuerpo de POST/PUT /api/productos.
type ProductoInput struct {
	Nombre         string          `json:"nombre"`
	SKU            string          `json:"sku"`
	Stock          int             `json:"stock"`
	StockMinimo    int             `json:"stock_minimo"`
	Valor          decimal.Decimal `json:"valor"`
	TipoProductoID ID              `json:"tipo_producto_id"`
	AlmacenID      ID              `json:"almacen_id"`
}

// FiltroProductos parámetros de búsqueda de GET /api/productos. Campos vacíos no se envían.
type FiltroProductos struct {
	AlmacenID      ID
	TipoProductoID ID
	Nombre         string
	SKU            string
}
