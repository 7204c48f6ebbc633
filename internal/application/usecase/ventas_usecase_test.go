package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/ventas"
	"github.com/jhoicas/negocify/internal/infrastructure/memoria"
)

var referencia = time.Date(2025, 4, 16, 12, 0, 0, 0, periodo.Zona)

func backendConVentas() *backendFalso {
	return &backendFalso{
		ventas: []entity.Venta{
			venta("1", "2025-04-16T10:00:00-04:00", "1190", "1", "1"),
			venta("2", "2025-04-15T10:00:00-04:00", "2380", "2", "1"),
			venta("3", "2025-03-10T10:00:00-04:00", "abc", "3", "1"),
			venta("4", "2025-04-16T09:00:00-04:00", "500", "1", "2"),
		},
		tipos: []entity.TipoVenta{{ID: "1", Nombre: "Efectivo"}, {ID: "2", Nombre: "Tarjeta"}},
	}
}

type entorno struct {
	uc       *VentasUseCase
	backend  *backendFalso
	store    *memoria.SesionStore
	sesion   *entity.Sesion
	metricas *metricasFalsas
}

func nuevoEntorno(t *testing.T, b *backendFalso, ttl time.Duration) entorno {
	t.Helper()
	store := memoria.NewSesionStore(0)
	s := &entity.Sesion{
		ID:        "s1",
		Token:     "tok",
		Almacenes: []entity.Almacen{{ID: "1", Nombre: "Centro", Rol: "Administrador"}, {ID: "2", Nombre: "Norte", Rol: "Empleado"}},
		AlmacenID: "1",
	}
	require.NoError(t, store.Crear(context.Background(), s))
	m := &metricasFalsas{}
	uc := NewVentasUseCase(b, store, tasaFija{valor: "950"}, m, VentasConfig{SnapshotTTL: ttl})
	uc.ahora = func() time.Time { return referencia }
	return entorno{uc: uc, backend: b, store: store, sesion: s, metricas: m}
}

func TestAnalizar_Mensual(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)

	res, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Mensual)})
	require.NoError(t, err)

	assert.Empty(t, res.Error)
	assert.Equal(t, "Mes abril 2025", res.Descripcion)
	assert.Equal(t, periodo.Rango{Inicio: "2025-04-01", Fin: "2025-04-30"}, res.Rango)
	assert.Equal(t, ventas.PorMes, res.Granularidad)
	require.Len(t, res.Ventas, 2)
	assert.Equal(t, "Efectivo", res.Ventas[0].MetodoPago)
	assert.True(t, res.Ventas[0].MontoNeto.Equal(decimal.NewFromInt(1000)))
	assert.True(t, res.Ventas[0].MontoNetoDivisa.Equal(decimal.RequireFromString("1.05")))

	assert.Equal(t, 2, res.Estadisticas.Cantidad)
	assert.True(t, res.Estadisticas.Total.Equal(decimal.NewFromInt(3570)))
	require.Len(t, res.Series, 1)
	assert.Equal(t, "Abril", res.Series[0].Name)
	require.Len(t, res.MetodosPago, 2)
	require.NotNil(t, res.TasaDolar)
	assert.Equal(t, "Centro", res.Almacen.Nombre)
}

func TestAnalizar_TodoIncluyeMontosInvalidosComoCero(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)

	res, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{
		Periodo:      periodo.NombradoDe(periodo.Todo),
		Granularidad: ventas.PorMes,
		Rellenar:     true,
	})
	require.NoError(t, err)
	require.Len(t, res.Ventas, 3)
	assert.Equal(t, "Desconocido (3)", res.Ventas[2].MetodoPago)
	assert.True(t, res.Ventas[2].MontoBruto.IsZero())
	assert.Len(t, res.Series, 12)
	assert.True(t, res.Estadisticas.Minimo.IsZero())
}

func TestAnalizar_DiaExacto(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	p, err := periodo.ExactoDe("2025-04-15")
	require.NoError(t, err)

	res, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{Periodo: p, Granularidad: ventas.PorUltimosSieteDias})
	require.NoError(t, err)
	require.Len(t, res.Ventas, 1)
	assert.Equal(t, entity.ID("2"), res.Ventas[0].ID)
	assert.Len(t, res.Series, 7)
	assert.Equal(t, "Día 2025-04-15", res.Descripcion)
}

func TestAnalizar_ReutilizaSnapshot(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	ctx := context.Background()
	q := dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Mensual)}

	_, err := e.uc.Analizar(ctx, e.sesion, q)
	require.NoError(t, err)
	q.Granularidad = ventas.PorDiaSemana
	_, err = e.uc.Analizar(ctx, e.sesion, q)
	require.NoError(t, err)
	assert.Equal(t, int32(1), e.backend.llamadasVentas.Load())

	q.Refrescar = true
	_, err = e.uc.Analizar(ctx, e.sesion, q)
	require.NoError(t, err)
	assert.Equal(t, int32(2), e.backend.llamadasVentas.Load())
}

func TestAnalizar_SinSnapshotConsultaSiempre(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), 0)
	ctx := context.Background()
	q := dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Mensual)}
	for i := 0; i < 3; i++ {
		_, err := e.uc.Analizar(ctx, e.sesion, q)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), e.backend.llamadasVentas.Load())
}

func TestAnalizar_DescartaRespuestaObsoleta(t *testing.T) {
	b := backendConVentas()
	e := nuevoEntorno(t, b, time.Minute)
	b.antesDeVentas = func() {
		_, err := e.store.SeleccionarAlmacen(context.Background(), "s1", "2")
		assert.NoError(t, err)
	}

	_, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Todo)})
	assert.ErrorIs(t, err, domain.ErrSeleccionObsoleta)
	assert.Equal(t, int32(1), e.metricas.obsoletas.Load())
}

func TestAnalizar_FallaDegradaAVacio(t *testing.T) {
	b := backendConVentas()
	b.errVentas = errors.New("timeout")
	e := nuevoEntorno(t, b, time.Minute)

	res, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Mensual)})
	require.NoError(t, err)
	assert.Equal(t, avisoVentas, res.Error)
	assert.Empty(t, res.Ventas)
	assert.NotNil(t, res.Series)
	assert.Equal(t, 0, res.Estadisticas.Cantidad)
}

func TestAnalizar_NoAutorizadoSePropaga(t *testing.T) {
	b := backendConVentas()
	b.errVentas = domain.ErrUnauthorized
	e := nuevoEntorno(t, b, time.Minute)

	_, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAnalizar_SinTasaNiTipos(t *testing.T) {
	b := backendConVentas()
	b.errTipos = errors.New("caído")
	e := nuevoEntorno(t, b, time.Minute)
	e.uc.tasa = tasaFija{err: domain.ErrTasaNoDisponible}

	res, err := e.uc.Analizar(context.Background(), e.sesion, dto.ConsultaVentas{Periodo: periodo.NombradoDe(periodo.Mensual)})
	require.NoError(t, err)
	require.Len(t, res.Ventas, 2)
	assert.Equal(t, "Desconocido (1)", res.Ventas[0].MetodoPago)
	assert.True(t, res.Ventas[0].MontoNetoDivisa.IsZero())
	assert.Nil(t, res.TasaDolar)
}

func TestAnalizar_SinAlmacen(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	s := *e.sesion
	s.AlmacenID = ""
	_, err := e.uc.Analizar(context.Background(), &s, dto.ConsultaVentas{})
	assert.ErrorIs(t, err, domain.ErrSinAlmacen)
}

func TestListar_FiltroPorDia(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	ctx := context.Background()

	res, err := e.uc.Listar(ctx, e.sesion, "", false)
	require.NoError(t, err)
	assert.Len(t, res.Data, 3)
	assert.Equal(t, 3, res.TotalSinFiltro)

	res, err = e.uc.Listar(ctx, e.sesion, "2025-04-01", false)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, "2025-04-01", res.Fecha)
	assert.Equal(t, 3, res.TotalSinFiltro)

	res, err = e.uc.Listar(ctx, e.sesion, "2025-04-16", false)
	require.NoError(t, err)
	assert.Len(t, res.Data, 1)

	_, err = e.uc.Listar(ctx, e.sesion, "16/04/2025", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// mismo contrato que el período exacto del análisis: solo YYYY-MM-DD
	_, err = e.uc.Listar(ctx, e.sesion, "2025-04-16T10:00:00-04:00", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.uc.Listar(ctx, e.sesion, "2025-02-30", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	res, err = e.uc.Listar(ctx, e.sesion, " 2025-04-15 ", false)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-15", res.Fecha)
	assert.Len(t, res.Data, 1)
}

func TestListar_IVACeroConfigurado(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), 0)
	cero := decimal.Zero
	e.uc.cfg.IVA = &cero

	res, err := e.uc.Listar(context.Background(), e.sesion, "2025-04-16", false)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.True(t, res.Data[0].MontoNeto.Equal(decimal.NewFromInt(1190)), res.Data[0].MontoNeto.String())
}

func TestListar_DescartaRespuestaObsoleta(t *testing.T) {
	b := backendConVentas()
	e := nuevoEntorno(t, b, time.Minute)
	b.antesDeVentas = func() {
		_, err := e.store.SeleccionarAlmacen(context.Background(), "s1", "2")
		assert.NoError(t, err)
	}

	_, err := e.uc.Listar(context.Background(), e.sesion, "", false)
	assert.ErrorIs(t, err, domain.ErrSeleccionObsoleta)
	assert.Equal(t, int32(1), e.metricas.obsoletas.Load())
}

func TestCrear_InvalidaSnapshot(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	ctx := context.Background()

	_, err := e.uc.Listar(ctx, e.sesion, "", false)
	require.NoError(t, err)

	v, err := e.uc.Crear(ctx, e.sesion, ventas.Carrito{
		TipoVentaID: "1",
		Lineas: []ventas.LineaCarrito{
			{ProductoID: "5", Cantidad: 2, Valor: decimal.NewFromInt(1000)},
			{ProductoID: "6", Cantidad: 1, Valor: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("99"), v.ID)
	require.NotNil(t, e.backend.ventaCreada)
	assert.True(t, e.backend.ventaCreada.MontoBruto.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, entity.ID("1"), e.backend.ventaCreada.AlmacenID)

	_, err = e.uc.Listar(ctx, e.sesion, "", false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), e.backend.llamadasVentas.Load())
}

func TestCrear_CarritoVacio(t *testing.T) {
	e := nuevoEntorno(t, backendConVentas(), time.Minute)
	_, err := e.uc.Crear(context.Background(), e.sesion, ventas.Carrito{TipoVentaID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, e.backend.ventaCreada)
}

func TestTiposVenta(t *testing.T) {
	b := backendConVentas()
	e := nuevoEntorno(t, b, time.Minute)
	res, err := e.uc.TiposVenta(context.Background(), e.sesion)
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)

	b.errTipos = errors.New("caído")
	res, err = e.uc.TiposVenta(context.Background(), e.sesion)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.NotNil(t, res.Data)
	assert.Equal(t, avisoTipos, res.Error)
}
