package repository

import (
	"context"

	"github.com/jhoicas/negocify/internal/domain/entity"
)

// SesionRepository define el puerto de almacenamiento de sesiones del panel (DIP).
// Obtener devuelve (nil, nil) si la sesión no existe o expiró.
type SesionRepository interface {
	Crear(ctx context.Context, s *entity.Sesion) error
	Obtener(ctx context.Context, id string) (*entity.Sesion, error)
	// SeleccionarAlmacen cambia el almacén e incrementa la generación en una sola operación atómica.
	SeleccionarAlmacen(ctx context.Context, id string, almacenID entity.ID) (*entity.Sesion, error)
	Eliminar(ctx context.Context, id string) error
}
