package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/ventas"
)

func TestGenerarResumen(t *testing.T) {
	tasa := decimal.RequireFromString("950")
	r := &dto.AnalisisVentasResponse{
		Descripcion:  "Mes abril 2025",
		Granularidad: ventas.PorMes,
		Almacen:      &entity.Almacen{ID: "1", Nombre: "Centro"},
		Series:       []ventas.Bucket{{Name: "Abril", Ventas: decimal.NewFromInt(3570), Orden: 3}},
		Estadisticas: ventas.Estadisticas{
			Total: decimal.NewFromInt(3570), Promedio: decimal.NewFromInt(1785),
			Maximo: decimal.NewFromInt(2380), Minimo: decimal.NewFromInt(1190), Cantidad: 2,
		},
		MetodosPago: []ventas.ResumenMetodoPago{{Name: "Efectivo", Count: 1, Total: decimal.NewFromInt(1190)}},
		TasaDolar:   &tasa,
	}

	out, err := NewMarotoResumenGenerator().GenerarResumen(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerarResumen_VacioConAviso(t *testing.T) {
	out, err := NewMarotoResumenGenerator().GenerarResumen(&dto.AnalisisVentasResponse{Error: "No se pudieron obtener las ventas."})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = NewMarotoResumenGenerator().GenerarResumen(nil)
	assert.Error(t, err)
}

func TestEtiquetaGranularidad(t *testing.T) {
	assert.Equal(t, "ÚLTIMOS 7 DÍAS", etiquetaGranularidad(ventas.PorUltimosSieteDias))
	assert.Empty(t, etiquetaGranularidad("otra"))
}
