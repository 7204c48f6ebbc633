package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

// ProductoRequest alta o edición de producto. Sin almacen_id se usa el de la sesión.
type ProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,max=200"`
	SKU            string          `json:"sku" validate:"omitempty,max=64"`
	Stock          int             `json:"stock" validate:"min=0"`
	StockMinimo    int             `json:"stock_minimo" validate:"min=0"`
	Valor          decimal.Decimal `json:"valor"`
	TipoProductoID entity.ID       `json:"tipo_producto_id"`
	AlmacenID      entity.ID       `json:"almacen_id"`
}

// Input convierte la petición al cuerpo del backend.
func (r ProductoRequest) Input(almacenID entity.ID) entity.ProductoInput {
	if !r.AlmacenID.Empty() {
		almacenID = r.AlmacenID
	}
	return entity.ProductoInput{
		Nombre:         r.Nombre,
		SKU:            r.SKU,
		Stock:          r.Stock,
		StockMinimo:    r.StockMinimo,
		Valor:          r.Valor,
		TipoProductoID: r.TipoProductoID,
		AlmacenID:      almacenID,
	}
}

// ProductoQuery filtros de GET /api/productos.
type ProductoQuery struct {
	TipoProductoID string `query:"tipo_producto_id"`
	Nombre         string `query:"search_name"`
	SKU            string `query:"search_sku"`
}
