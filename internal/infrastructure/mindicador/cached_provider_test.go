package mindicador

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/infrastructure/memoria"
	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
)

type origenFalso struct {
	llamadas atomic.Int32
	espera   chan struct{}
	err      error
	valor    string
}

func (o *origenFalso) ValorDolar(_ context.Context) (*entity.ValorDolar, error) {
	o.llamadas.Add(1)
	if o.espera != nil {
		<-o.espera
	}
	if o.err != nil {
		return nil, o.err
	}
	return &entity.ValorDolar{Valor: decimal.RequireFromString(o.valor), ObtenidoEn: time.Now(), Fuente: "falso"}, nil
}

func TestCachedProvider_HitYMiss(t *testing.T) {
	ctx := context.Background()
	origen := &origenFalso{valor: "950"}
	m := metrics.New()
	p := NewCachedProvider(origen, memoria.NewTasaCache(), time.Hour, m)

	v, err := p.ValorDolar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "950", v.Valor.String())

	v, err = p.ValorDolar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "950", v.Valor.String())
	assert.Equal(t, int32(1), origen.llamadas.Load())

	esperado := `
# HELP negocify_tasa_cache_total Consultas al caché del valor del dólar por resultado.
# TYPE negocify_tasa_cache_total counter
negocify_tasa_cache_total{resultado="hit"} 1
negocify_tasa_cache_total{resultado="miss"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(esperado), "negocify_tasa_cache_total"))
}

func TestCachedProvider_VenceTTL(t *testing.T) {
	ctx := context.Background()
	origen := &origenFalso{valor: "950"}
	p := NewCachedProvider(origen, memoria.NewTasaCache(), time.Minute, nil)

	_, err := p.ValorDolar(ctx)
	require.NoError(t, err)

	p.ahora = func() time.Time { return time.Now().Add(2 * time.Minute) }
	origen.valor = "970"
	v, err := p.ValorDolar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "970", v.Valor.String())
	assert.Equal(t, int32(2), origen.llamadas.Load())
}

func TestCachedProvider_ValorAnteriorSiFalla(t *testing.T) {
	ctx := context.Background()
	cache := memoria.NewTasaCache()
	require.NoError(t, cache.Guardar(ctx, entity.ValorDolar{
		Valor:      decimal.RequireFromString("900"),
		ObtenidoEn: time.Now().Add(-3 * time.Hour),
	}))
	origen := &origenFalso{err: domain.ErrTasaNoDisponible}
	p := NewCachedProvider(origen, cache, time.Hour, nil)

	v, err := p.ValorDolar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "900", v.Valor.String())
}

func TestCachedProvider_SinValorYFalla(t *testing.T) {
	origen := &origenFalso{err: domain.ErrTasaNoDisponible}
	p := NewCachedProvider(origen, memoria.NewTasaCache(), time.Hour, nil)
	_, err := p.ValorDolar(context.Background())
	assert.ErrorIs(t, err, domain.ErrTasaNoDisponible)
}

func TestCachedProvider_UnaSolaRecarga(t *testing.T) {
	origen := &origenFalso{valor: "950", espera: make(chan struct{})}
	p := NewCachedProvider(origen, memoria.NewTasaCache(), time.Hour, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.ValorDolar(context.Background())
			errs <- err
		}()
	}
	// deja que todas entren al grupo antes de liberar el origen
	require.Eventually(t, func() bool { return origen.llamadas.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(origen.espera)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), origen.llamadas.Load())
}

func TestCachedProvider_ContextoCancelado(t *testing.T) {
	origen := &origenFalso{valor: "950", espera: make(chan struct{})}
	defer close(origen.espera)
	p := NewCachedProvider(origen, memoria.NewTasaCache(), time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.ValorDolar(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
