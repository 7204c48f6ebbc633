package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/navegacion"
	"github.com/jhoicas/negocify/internal/infrastructure/memoria"
	"github.com/jhoicas/negocify/pkg/jwt"
)

const secreto = "secreto-de-prueba"

// backendLogin solo implementa Login; cualquier otra llamada entra en pánico.
type backendLogin struct {
	ports.Backend
	res *entity.LoginResult
	err error
}

func (b *backendLogin) Login(_ context.Context, email, password string) (*entity.LoginResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.res, nil
}

func loginOK() *entity.LoginResult {
	return &entity.LoginResult{
		Token:   "token-backend",
		Usuario: entity.Usuario{ID: "7", Nombre: "Ana", Email: "ana@tienda.cl"},
		Permisos: entity.Permisos{Almacenes: []entity.Almacen{
			{ID: "1", Nombre: "Centro", Rol: "Administrador"},
			{ID: "2", Nombre: "Norte", Rol: "Empleado"},
		}},
	}
}

func nuevoUC(b ports.Backend) (*AuthUseCase, *memoria.SesionStore) {
	store := memoria.NewSesionStore(0)
	return NewAuthUseCase(b, store, JWTConfig{Secret: secreto, ExpMinutes: 60, Issuer: "test"}), store
}

func TestLogin_CreaSesionConPrimerAlmacen(t *testing.T) {
	ctx := context.Background()
	uc, store := nuevoUC(&backendLogin{res: loginOK()})

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@tienda.cl", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Administrador", res.Sesion.Rol)
	require.NotNil(t, res.Sesion.AlmacenSeleccionado)
	assert.Equal(t, entity.ID("1"), res.Sesion.AlmacenSeleccionado.ID)

	sesionID, userID, err := jwt.Parse(secreto, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "7", userID)

	s, err := store.Obtener(ctx, sesionID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "token-backend", s.Token)
}

func TestLogin_ErrorDelBackend(t *testing.T) {
	uc, _ := nuevoUC(&backendLogin{err: domain.ErrUnauthorized})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.cl", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinTokenDelBackend(t *testing.T) {
	res := loginOK()
	res.Token = ""
	uc, _ := nuevoUC(&backendLogin{res: res})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.cl", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAutenticar(t *testing.T) {
	ctx := context.Background()
	uc, _ := nuevoUC(&backendLogin{res: loginOK()})
	res, err := uc.Login(ctx, dto.LoginRequest{Email: "a@b.cl", Password: "x"})
	require.NoError(t, err)

	s, err := uc.Autenticar(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", s.Usuario.Nombre)

	_, err = uc.Autenticar(ctx, "")
	assert.ErrorIs(t, err, domain.ErrMissingToken)

	_, err = uc.Autenticar(ctx, "no-es-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, uc.Logout(ctx, s.ID))
	_, err = uc.Autenticar(ctx, res.Token)
	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
}

func TestSeleccionarAlmacen(t *testing.T) {
	ctx := context.Background()
	uc, _ := nuevoUC(&backendLogin{res: loginOK()})
	res, err := uc.Login(ctx, dto.LoginRequest{Email: "a@b.cl", Password: "x"})
	require.NoError(t, err)
	s, err := uc.Autenticar(ctx, res.Token)
	require.NoError(t, err)

	act, err := uc.SeleccionarAlmacen(ctx, s, "2")
	require.NoError(t, err)
	assert.Equal(t, "Empleado", act.Rol)
	assert.Equal(t, uint64(1), act.Generacion)

	_, err = uc.SeleccionarAlmacen(ctx, s, "99")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.SeleccionarAlmacen(ctx, s, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShell(t *testing.T) {
	uc, _ := nuevoUC(&backendLogin{})

	sinSesion := uc.Shell(nil, "/dashboard/ventas")
	assert.Equal(t, navegacion.SinSesion, sinSesion.Estado)
	assert.Empty(t, sinSesion.Menu)

	empleado := &entity.Sesion{
		ID:        "s",
		Almacenes: []entity.Almacen{{ID: "2", Rol: "Empleado"}},
		AlmacenID: "2",
	}
	res := uc.Shell(empleado, "/dashboard/ventas/")
	assert.Equal(t, "/dashboard/ventas", res.Ruta)
	assert.Equal(t, navegacion.Denegado, res.Estado)
	assert.Len(t, res.Menu, 2)

	res = uc.Shell(empleado, "/dashboard")
	assert.Equal(t, navegacion.RutaInicio, res.Ruta)
	assert.Equal(t, navegacion.Permitido, res.Estado)

	sinAlmacen := &entity.Sesion{ID: "s", Almacenes: []entity.Almacen{{ID: "2", Rol: "Empleado"}}}
	assert.Equal(t, navegacion.CargandoRol, uc.Shell(sinAlmacen, "/dashboard/inicio").Estado)
}
