package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/repository"
)

// ProductoUseCase inventario del almacén seleccionado.
type ProductoUseCase struct {
	backend  ports.Backend
	vigencia vigencia
}

// NewProductoUseCase construye el caso de uso. metricas puede ser nil.
func NewProductoUseCase(backend ports.Backend, sesiones repository.SesionRepository, metricas ports.Metricas) *ProductoUseCase {
	return &ProductoUseCase{backend: backend, vigencia: vigencia{sesiones: sesiones, metricas: metricas}}
}

// Listar productos del almacén con los filtros de búsqueda. Falla => lista vacía con aviso.
func (uc *ProductoUseCase) Listar(ctx context.Context, s *entity.Sesion, q dto.ProductoQuery) (dto.ListaResponse[entity.Producto], error) {
	filtro := entity.FiltroProductos{
		AlmacenID:      s.AlmacenID,
		TipoProductoID: entity.ID(strings.TrimSpace(q.TipoProductoID)),
		Nombre:         strings.TrimSpace(q.Nombre),
		SKU:            strings.TrimSpace(q.SKU),
	}
	ticket := s.Ticket()
	productos, err := uc.backend.ListarProductos(ctx, s.Token, filtro)
	if errVig := uc.vigencia.verificar(ctx, "listar_productos", ticket); errVig != nil {
		return dto.ListaResponse[entity.Producto]{}, errVig
	}
	if err != nil {
		aviso, err := lecturaFallida("listar_productos", err, avisoProductos)
		if err != nil {
			return dto.ListaResponse[entity.Producto]{}, err
		}
		return dto.NuevaLista[entity.Producto](nil, aviso), nil
	}
	return dto.NuevaLista(productos, ""), nil
}

// Tipos catálogo de tipos de producto.
func (uc *ProductoUseCase) Tipos(ctx context.Context, s *entity.Sesion) (dto.ListaResponse[entity.TipoProducto], error) {
	tipos, err := uc.backend.ListarTiposProducto(ctx, s.Token)
	if err != nil {
		aviso, err := lecturaFallida("tipos_producto", err, avisoTipos)
		if err != nil {
			return dto.ListaResponse[entity.TipoProducto]{}, err
		}
		return dto.NuevaLista[entity.TipoProducto](nil, aviso), nil
	}
	return dto.NuevaLista(tipos, ""), nil
}

// Crear alta de producto; sin almacen_id en la petición se usa el de la sesión.
func (uc *ProductoUseCase) Crear(ctx context.Context, s *entity.Sesion, in dto.ProductoRequest) (*entity.Producto, error) {
	input, err := validarProducto(in.Input(s.AlmacenID))
	if err != nil {
		return nil, err
	}
	return uc.backend.CrearProducto(ctx, s.Token, input)
}

// Actualizar edición de producto.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, s *entity.Sesion, id entity.ID, in dto.ProductoRequest) (*entity.Producto, error) {
	if id.Empty() {
		return nil, fmt.Errorf("%w: id de producto requerido", domain.ErrInvalidInput)
	}
	input, err := validarProducto(in.Input(s.AlmacenID))
	if err != nil {
		return nil, err
	}
	return uc.backend.ActualizarProducto(ctx, s.Token, id, input)
}

// Eliminar baja de producto.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, s *entity.Sesion, id entity.ID) error {
	if id.Empty() {
		return fmt.Errorf("%w: id de producto requerido", domain.ErrInvalidInput)
	}
	return uc.backend.EliminarProducto(ctx, s.Token, id)
}

func validarProducto(in entity.ProductoInput) (entity.ProductoInput, error) {
	if in.AlmacenID.Empty() {
		return in, domain.ErrSinAlmacen
	}
	if in.Valor.IsNegative() {
		return in, fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	return in, nil
}
