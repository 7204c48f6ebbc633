package moneda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatearCLP_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$1.234.567", FormatearCLP(decimal.NewFromInt(1234567)))
}

func TestFormatearCLP_RedondeaSinDecimales(t *testing.T) {
	assert.Equal(t, "$0", FormatearCLP(decimal.RequireFromString("0.4")))
	assert.Equal(t, "-$500", FormatearCLP(decimal.NewFromInt(-500)))
}
