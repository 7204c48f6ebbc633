package ports

import (
	"context"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

// ProveedorTasa obtiene el valor actual del dólar en pesos chilenos.
type ProveedorTasa interface {
	ValorDolar(ctx context.Context) (*entity.ValorDolar, error)
}

// CacheTasa guarda el último valor obtenido. Obtener devuelve (nil, nil) si no hay valor.
type CacheTasa interface {
	Obtener(ctx context.Context) (*entity.ValorDolar, error)
	Guardar(ctx context.Context, v entity.ValorDolar) error
}
