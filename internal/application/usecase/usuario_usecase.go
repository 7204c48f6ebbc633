package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios del almacén seleccionado.
type UsuarioUseCase struct {
	backend  ports.Backend
	vigencia vigencia
}

// NewUsuarioUseCase construye el caso de uso. metricas puede ser nil.
func NewUsuarioUseCase(backend ports.Backend, sesiones repository.SesionRepository, metricas ports.Metricas) *UsuarioUseCase {
	return &UsuarioUseCase{backend: backend, vigencia: vigencia{sesiones: sesiones, metricas: metricas}}
}

// Listar usuarios del almacén con su rol principal resuelto. Si el almacén cambió
// mientras se consultaba, la lista se descarta con ErrSeleccionObsoleta.
func (uc *UsuarioUseCase) Listar(ctx context.Context, s *entity.Sesion) (dto.ListaResponse[dto.UsuarioResponse], error) {
	if err := exigirAlmacen(s.AlmacenID); err != nil {
		return dto.ListaResponse[dto.UsuarioResponse]{}, err
	}
	ticket := s.Ticket()
	usuarios, err := uc.backend.ListarUsuarios(ctx, s.Token, s.AlmacenID)
	if errVig := uc.vigencia.verificar(ctx, "listar_usuarios", ticket); errVig != nil {
		return dto.ListaResponse[dto.UsuarioResponse]{}, errVig
	}
	if err != nil {
		aviso, err := lecturaFallida("listar_usuarios", err, avisoUsuarios)
		if err != nil {
			return dto.ListaResponse[dto.UsuarioResponse]{}, err
		}
		return dto.NuevaLista[dto.UsuarioResponse](nil, aviso), nil
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.NuevoUsuarioResponse(u))
	}
	return dto.NuevaLista(out, ""), nil
}

// Crear alta de usuario en uno de los almacenes de la sesión.
func (uc *UsuarioUseCase) Crear(ctx context.Context, s *entity.Sesion, in dto.UsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := verificarAlmacenPropio(s, in.AlmacenID); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password requerido", domain.ErrInvalidInput)
	}
	u, err := uc.backend.CrearUsuario(ctx, s.Token, in.Input())
	if err != nil {
		return nil, err
	}
	res := dto.NuevoUsuarioResponse(*u)
	return &res, nil
}

// Actualizar edición de usuario; password vacío conserva el actual.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, s *entity.Sesion, id entity.ID, in dto.UsuarioRequest) (*dto.UsuarioResponse, error) {
	if id.Empty() {
		return nil, fmt.Errorf("%w: id de usuario requerido", domain.ErrInvalidInput)
	}
	if err := verificarAlmacenPropio(s, in.AlmacenID); err != nil {
		return nil, err
	}
	u, err := uc.backend.ActualizarUsuario(ctx, s.Token, id, in.Input())
	if err != nil {
		return nil, err
	}
	res := dto.NuevoUsuarioResponse(*u)
	return &res, nil
}

// Eliminar baja de usuario.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, s *entity.Sesion, id entity.ID) error {
	if id.Empty() {
		return fmt.Errorf("%w: id de usuario requerido", domain.ErrInvalidInput)
	}
	return uc.backend.EliminarUsuario(ctx, s.Token, id)
}

// verificarAlmacenPropio guía para la interfaz antes de llamar al backend, que sigue decidiendo.
func verificarAlmacenPropio(s *entity.Sesion, almacenID entity.ID) error {
	if !s.TieneAlmacen(almacenID) {
		return domain.ErrAlmacenAjeno
	}
	return nil
}
