package memoria

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

func TestTasaCache_VacioYGuardar(t *testing.T) {
	ctx := context.Background()
	c := NewTasaCache()

	v, err := c.Obtener(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.Guardar(ctx, entity.ValorDolar{Valor: decimal.NewFromInt(950), ObtenidoEn: time.Now()}))
	v, err = c.Obtener(ctx)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Valor.Equal(decimal.NewFromInt(950)))

	// la copia devuelta no altera lo guardado
	v.Valor = decimal.Zero
	otra, _ := c.Obtener(ctx)
	assert.True(t, otra.Valor.Equal(decimal.NewFromInt(950)))
}
