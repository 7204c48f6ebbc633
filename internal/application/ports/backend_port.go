package ports

import (
	"context"

	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
)

// Backend define el puerto de salida hacia la API REST del negocio. Cada método autenticado
// recibe el token del usuario; con token vacío el adaptador no envía la petición y devuelve
// domain.ErrMissingToken.
type Backend interface {
	Login(ctx context.Context, email, password string) (*entity.LoginResult, error)

	ListarProductos(ctx context.Context, token string, filtro entity.FiltroProductos) ([]entity.Producto, error)
	CrearProducto(ctx context.Context, token string, in entity.ProductoInput) (*entity.Producto, error)
	ActualizarProducto(ctx context.Context, token string, id entity.ID, in entity.ProductoInput) (*entity.Producto, error)
	EliminarProducto(ctx context.Context, token string, id entity.ID) error
	ListarTiposProducto(ctx context.Context, token string) ([]entity.TipoProducto, error)

	ListarUsuarios(ctx context.Context, token string, almacenID entity.ID) ([]entity.Usuario, error)
	CrearUsuario(ctx context.Context, token string, in entity.UsuarioInput) (*entity.Usuario, error)
	ActualizarUsuario(ctx context.Context, token string, id entity.ID, in entity.UsuarioInput) (*entity.Usuario, error)
	EliminarUsuario(ctx context.Context, token string, id entity.ID) error

	ListarVentas(ctx context.Context, token string, almacenID entity.ID) ([]entity.Venta, error)
	CrearVenta(ctx context.Context, token string, in entity.NuevaVenta) (*entity.Venta, error)
	ListarTiposVenta(ctx context.Context, token string) ([]entity.TipoVenta, error)

	// DescargarReporte devuelve el archivo generado por el backend para el almacén y rango.
	DescargarReporte(ctx context.Context, token string, almacenID entity.ID, rango periodo.Rango) (*entity.Archivo, error)
}
