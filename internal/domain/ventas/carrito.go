package ventas

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

// LineaCarrito producto en el carrito del punto de venta.
type LineaCarrito struct {
	ProductoID entity.ID       `json:"producto_id"`
	Cantidad   int             `json:"cantidad"`
	Valor      decimal.Decimal `json:"valor"`
}

// Carrito venta en armado: líneas y método de pago elegido.
type Carrito struct {
	TipoVentaID entity.ID      `json:"tipo_venta_id"`
	Lineas      []LineaCarrito `json:"productos"`
}

// Total suma de valor × cantidad.
func (c Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lineas {
		total = total.Add(l.Valor.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	return total
}

// NuevaVenta valida el carrito y arma el cuerpo para el backend. Las líneas repetidas del
// mismo producto se consolidan sumando cantidades.
func (c Carrito) NuevaVenta(almacenID entity.ID) (entity.NuevaVenta, error) {
	if almacenID.Empty() {
		return entity.NuevaVenta{}, domain.ErrSinAlmacen
	}
	if c.TipoVentaID.Empty() {
		return entity.NuevaVenta{}, fmt.Errorf("%w: selecciona un método de pago", domain.ErrInvalidInput)
	}
	if len(c.Lineas) == 0 {
		return entity.NuevaVenta{}, fmt.Errorf("%w: el carrito está vacío", domain.ErrInvalidInput)
	}

	lineas := make([]entity.LineaVenta, 0, len(c.Lineas))
	pos := map[entity.ID]int{}
	for _, l := range c.Lineas {
		if l.ProductoID.Empty() {
			return entity.NuevaVenta{}, fmt.Errorf("%w: producto sin id", domain.ErrInvalidInput)
		}
		if l.Cantidad < 1 {
			return entity.NuevaVenta{}, fmt.Errorf("%w: cantidad inválida para el producto %s", domain.ErrInvalidInput, l.ProductoID)
		}
		if l.Valor.IsNegative() {
			return entity.NuevaVenta{}, fmt.Errorf("%w: valor negativo para el producto %s", domain.ErrInvalidInput, l.ProductoID)
		}
		if i, ok := pos[l.ProductoID]; ok {
			lineas[i].Cantidad += l.Cantidad
			continue
		}
		pos[l.ProductoID] = len(lineas)
		lineas = append(lineas, entity.LineaVenta{ProductoID: l.ProductoID, Cantidad: l.Cantidad})
	}

	return entity.NuevaVenta{
		MontoBruto:  c.Total(),
		TipoVentaID: c.TipoVentaID,
		AlmacenID:   almacenID,
		Productos:   lineas,
	}, nil
}
