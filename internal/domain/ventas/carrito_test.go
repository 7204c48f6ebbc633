package ventas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

func TestCarrito_NuevaVenta(t *testing.T) {
	c := Carrito{
		TipoVentaID: "1",
		Lineas: []LineaCarrito{
			{ProductoID: "10", Cantidad: 2, Valor: dec("1500")},
			{ProductoID: "11", Cantidad: 1, Valor: dec("990")},
			{ProductoID: "10", Cantidad: 1, Valor: dec("1500")},
		},
	}
	nv, err := c.NuevaVenta("3")
	require.NoError(t, err)
	assert.True(t, dec("5490").Equal(nv.MontoBruto))
	assert.Equal(t, entity.ID("3"), nv.AlmacenID)
	assert.Equal(t, []entity.LineaVenta{{ProductoID: "10", Cantidad: 3}, {ProductoID: "11", Cantidad: 1}}, nv.Productos)
}

func TestCarrito_Validaciones(t *testing.T) {
	linea := []LineaCarrito{{ProductoID: "10", Cantidad: 1, Valor: dec("100")}}

	_, err := Carrito{TipoVentaID: "1", Lineas: linea}.NuevaVenta("")
	assert.ErrorIs(t, err, domain.ErrSinAlmacen)

	_, err = Carrito{Lineas: linea}.NuevaVenta("3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Carrito{TipoVentaID: "1"}.NuevaVenta("3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Carrito{TipoVentaID: "1", Lineas: []LineaCarrito{{ProductoID: "10", Cantidad: 0}}}.NuevaVenta("3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Carrito{TipoVentaID: "1", Lineas: []LineaCarrito{{ProductoID: "10", Cantidad: 1, Valor: dec("-1")}}}.NuevaVenta("3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
