package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

var _ ports.CacheTasa = (*TasaCache)(nil)

const claveDolar = Prefijo + "dolar"

// TasaCache último valor del dólar compartido entre instancias. La retención es más larga que
// la ventana de frescura para poder servir el valor anterior si mindicador falla.
type TasaCache struct {
	client    *redis.Client
	retencion time.Duration
}

// NewTasaCache retencion <= 0 => 24 h.
func NewTasaCache(client *redis.Client, retencion time.Duration) *TasaCache {
	if retencion <= 0 {
		retencion = 24 * time.Hour
	}
	return &TasaCache{client: client, retencion: retencion}
}

func (c *TasaCache) Obtener(ctx context.Context) (*entity.ValorDolar, error) {
	raw, err := c.client.Get(ctx, claveDolar).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer dólar: %w", err)
	}
	var v entity.ValorDolar
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cache: dólar corrupto: %w", err)
	}
	return &v, nil
}

func (c *TasaCache) Guardar(ctx context.Context, v entity.ValorDolar) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, claveDolar, raw, c.retencion).Err()
}
