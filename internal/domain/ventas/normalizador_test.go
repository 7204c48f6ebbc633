package ventas

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

var catalogo = NuevoCatalogo([]entity.TipoVenta{{ID: "1", Nombre: "Efectivo"}, {ID: "2", Nombre: "Tarjeta"}})

func TestNormalizar_EtiquetaDesdeCatalogo(t *testing.T) {
	raw := `[{"id":1,"fecha":"2025-04-01","monto_bruto":1000,"tipo_venta_id":1},
	         {"id":2,"fecha":"2025-04-01","monto_bruto":"2000","tipo_venta_id":"2"},
	         {"id":3,"fecha":"2025-04-02","monto_bruto":500,"tipo_venta_id":1}]`
	var vs []entity.Venta
	require.NoError(t, json.Unmarshal([]byte(raw), &vs))

	n := Normalizador{Metodos: catalogo}.NormalizarTodas(vs)
	require.Len(t, n, 3)
	assert.Equal(t, "Efectivo", n[0].MetodoPago)
	assert.Equal(t, "Tarjeta", n[1].MetodoPago)
	assert.Equal(t, n[0].MetodoPago, n[2].MetodoPago)
	assert.Equal(t, "2025-04-01", n[0].Dia)
}

func TestNormalizar_IDDesconocido(t *testing.T) {
	v := entity.Venta{ID: "9", Fecha: "2025-04-01", MontoBruto: entity.MontoTexto("100"), TipoVentaID: "7"}
	assert.Equal(t, "Desconocido (7)", Normalizar(v, catalogo, nil).MetodoPago)
	assert.Equal(t, "Desconocido (7)", Normalizar(v, CatalogoMetodosPago{}, nil).MetodoPago)
	assert.Equal(t, "Desconocido (7)", Normalizar(v, nil, nil).MetodoPago)
}

func TestNormalizar_MontoDivisaRedondeado(t *testing.T) {
	v := entity.Venta{MontoBruto: entity.MontoTexto("14161"), MontoNeto: entity.MontoTexto("11900"), TipoVentaID: "1"}
	got := Normalizar(v, catalogo, ptr(dec("950")))
	assert.True(t, dec("12.53").Equal(got.MontoNetoDivisa), got.MontoNetoDivisa.String())
}

func TestNormalizar_SinTasaODivisaInvalida(t *testing.T) {
	v := entity.Venta{MontoNeto: entity.MontoTexto("11900")}
	assert.True(t, Normalizar(v, catalogo, nil).MontoNetoDivisa.IsZero())
	assert.True(t, Normalizar(v, catalogo, ptr(decimal.Zero)).MontoNetoDivisa.IsZero())
	assert.True(t, Normalizar(v, catalogo, ptr(dec("-950"))).MontoNetoDivisa.IsZero())

	basura := entity.Venta{MontoNeto: entity.MontoTexto("abc")}
	assert.True(t, Normalizar(basura, catalogo, ptr(dec("950"))).MontoNetoDivisa.IsZero())

	negativo := entity.Venta{MontoNeto: entity.MontoTexto("-100")}
	assert.True(t, Normalizar(negativo, catalogo, ptr(dec("950"))).MontoNetoDivisa.IsZero())
}

func TestNormalizar_NetoDerivadoDelBruto(t *testing.T) {
	v := entity.Venta{MontoBruto: entity.MontoTexto("11900")}
	got := Normalizar(v, catalogo, ptr(dec("1000")))
	assert.True(t, dec("10000").Equal(got.MontoNeto), got.MontoNeto.String())
	assert.True(t, dec("10").Equal(got.MontoNetoDivisa))

	conIVA := Normalizador{Metodos: catalogo, IVA: ptr(dec("0.10"))}.Normalizar(entity.Venta{MontoBruto: entity.MontoTexto("110")})
	assert.True(t, dec("100").Equal(conIVA.MontoNeto))

	exento := Normalizador{Metodos: catalogo, IVA: ptr(decimal.Zero)}.Normalizar(entity.Venta{MontoBruto: entity.MontoTexto("110")})
	assert.True(t, dec("110").Equal(exento.MontoNeto), exento.MontoNeto.String())
}

func TestNormalizar_MontosNoNumericosSonCero(t *testing.T) {
	var v entity.Venta
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"fecha":"x","monto_bruto":"mil","monto_neto":{"a":1},"tipo_venta_id":1}`), &v))

	got := Normalizar(v, catalogo, ptr(dec("950")))
	assert.True(t, got.MontoBruto.IsZero())
	assert.True(t, got.MontoNeto.IsZero())
	assert.True(t, got.MontoNetoDivisa.IsZero())
	assert.Empty(t, got.Dia)
}

func TestCoercerMonto(t *testing.T) {
	d, ok := CoercerMonto(entity.MontoCrudo{}, "x")
	assert.False(t, ok)
	assert.True(t, d.IsZero())

	d, ok = CoercerMonto(entity.MontoTexto(" 1500.50 "), "x")
	assert.True(t, ok)
	assert.True(t, dec("1500.5").Equal(d))

	_, ok = CoercerMonto(entity.MontoTexto("NaN"), "x")
	assert.False(t, ok)
}
