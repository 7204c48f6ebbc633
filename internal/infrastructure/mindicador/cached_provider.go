package mindicador

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
)

var _ ports.ProveedorTasa = (*CachedProvider)(nil)

const claveRefresco = "dolar"

// CachedProvider mantiene el último valor durante ttl. Las recargas concurrentes se
// unifican con singleflight; si la recarga falla y hay un valor anterior, se devuelve ese.
type CachedProvider struct {
	origen  ports.ProveedorTasa
	cache   ports.CacheTasa
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
	ahora   func() time.Time
}

// NewCachedProvider envuelve origen con el caché indicado.
func NewCachedProvider(origen ports.ProveedorTasa, cache ports.CacheTasa, ttl time.Duration, m *metrics.Metrics) *CachedProvider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedProvider{origen: origen, cache: cache, ttl: ttl, metrics: m, ahora: time.Now}
}

// ValorDolar devuelve el valor vigente o lo recarga.
func (p *CachedProvider) ValorDolar(ctx context.Context) (*entity.ValorDolar, error) {
	anterior, err := p.cache.Obtener(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("caché del dólar no disponible")
		anterior = nil
	}
	if anterior != nil && anterior.Vigente(p.ahora(), p.ttl) {
		p.metrics.CacheTasa(metrics.ResultadoHit)
		return anterior, nil
	}

	ch := p.group.DoChan(claveRefresco, func() (interface{}, error) {
		// la recarga no depende de la petición que la disparó
		v, err := p.origen.ValorDolar(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if err := p.cache.Guardar(context.WithoutCancel(ctx), *v); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar el dólar en caché")
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if anterior != nil {
				p.metrics.CacheTasa(metrics.ResultadoStale)
				log.Warn().Err(res.Err).Msg("no se pudo refrescar el dólar, se usa el último valor")
				return anterior, nil
			}
			return nil, res.Err
		}
		p.metrics.CacheTasa(metrics.ResultadoMiss)
		return res.Val.(*entity.ValorDolar), nil
	}
}
