package memoria

import (
	"context"
	"sync"

	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

var _ ports.CacheTasa = (*TasaCache)(nil)

// TasaCache último valor del dólar en memoria.
type TasaCache struct {
	mu    sync.RWMutex
	valor *entity.ValorDolar
}

// NewTasaCache caché vacío.
func NewTasaCache() *TasaCache { return &TasaCache{} }

func (c *TasaCache) Obtener(_ context.Context) (*entity.ValorDolar, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.valor == nil {
		return nil, nil
	}
	v := *c.valor
	return &v, nil
}

func (c *TasaCache) Guardar(_ context.Context, v entity.ValorDolar) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valor = &v
	return nil
}
