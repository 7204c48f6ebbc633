package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/navegacion"
	"github.com/jhoicas/negocify/internal/domain/repository"
	"github.com/jhoicas/negocify/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login contra el backend, logout, selección de almacén y shell.
type AuthUseCase struct {
	backend  ports.Backend
	sesiones repository.SesionRepository
	jwtCfg   JWTConfig
	menu     []navegacion.MenuItem
	ahora    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth con el menú por defecto.
func NewAuthUseCase(backend ports.Backend, sesiones repository.SesionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		backend:  backend,
		sesiones: sesiones,
		jwtCfg:   jwtCfg,
		menu:     navegacion.MenuPorDefecto(),
		ahora:    time.Now,
	}
}

// Login valida credenciales en el backend, crea la sesión con el primer almacén seleccionado
// y retorna el token del BFF.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	res, err := uc.backend.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, fmt.Errorf("%w: login sin token", domain.ErrUpstream)
	}
	now := uc.ahora()
	sesion := &entity.Sesion{
		ID:             uuid.New().String(),
		Token:          res.Token,
		Usuario:        res.Usuario,
		EsAdminSistema: res.Permisos.EsAdminSistema,
		Almacenes:      res.Permisos.Almacenes,
		CreadaEn:       now,
	}
	if len(sesion.Almacenes) > 0 {
		sesion.AlmacenID = sesion.Almacenes[0].ID
	}
	if err := uc.sesiones.Crear(ctx, sesion); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sesion.ID, sesion.Usuario.ID.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sesiones.Eliminar(ctx, sesion.ID)
		return nil, err
	}
	log.Info().Str("sesion", sesion.ID).Str("usuario", sesion.Usuario.ID.String()).Int("almacenes", len(sesion.Almacenes)).Msg("login")
	return &dto.LoginResponse{
		Token:    token,
		ExpiraEn: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		Sesion:   NuevaSesionResponse(sesion),
	}, nil
}

// Autenticar resuelve la sesión referida por el token del BFF.
func (uc *AuthUseCase) Autenticar(ctx context.Context, token string) (*entity.Sesion, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	sesionID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	sesion, err := uc.sesiones.Obtener(ctx, sesionID)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, domain.ErrSesionExpirada
	}
	return sesion, nil
}

// Logout elimina la sesión. Es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, sesionID string) error {
	return uc.sesiones.Eliminar(ctx, sesionID)
}

// SeleccionarAlmacen cambia el almacén activo e incrementa la generación de la sesión.
func (uc *AuthUseCase) SeleccionarAlmacen(ctx context.Context, sesion *entity.Sesion, almacenID entity.ID) (*dto.SesionResponse, error) {
	if sesion == nil {
		return nil, domain.ErrSesionExpirada
	}
	if almacenID.Empty() {
		return nil, fmt.Errorf("%w: almacen_id requerido", domain.ErrInvalidInput)
	}
	if !sesion.TieneAlmacen(almacenID) {
		return nil, domain.ErrForbidden
	}
	act, err := uc.sesiones.SeleccionarAlmacen(ctx, sesion.ID, almacenID)
	if err != nil {
		return nil, err
	}
	res := NuevaSesionResponse(act)
	return &res, nil
}

// Shell menú visible y estado de acceso para la ruta pedida.
func (uc *AuthUseCase) Shell(sesion *entity.Sesion, ruta string) dto.ShellResponse {
	ruta = navegacion.NormalizarRuta(ruta)
	if ruta == "" {
		ruta = navegacion.RutaInicio
	}
	res := dto.ShellResponse{Ruta: ruta, Menu: []navegacion.MenuItem{}}
	if sesion == nil {
		res.Estado = navegacion.ResolverAcceso(false, ruta, uc.menu, "")
		return res
	}
	res.Rol = navegacion.RolActual(sesion.Almacenes, sesion.AlmacenID)
	res.Menu = navegacion.MenuVisible(uc.menu, res.Rol)
	res.Estado = navegacion.ResolverAcceso(true, ruta, uc.menu, res.Rol)
	res.AlmacenSeleccionado = sesion.AlmacenSeleccionado()
	return res
}

// NuevaSesionResponse vista de la sesión sin el token del backend.
func NuevaSesionResponse(s *entity.Sesion) dto.SesionResponse {
	almacenes := s.Almacenes
	if almacenes == nil {
		almacenes = []entity.Almacen{}
	}
	return dto.SesionResponse{
		Usuario:             s.Usuario,
		EsAdminSistema:      s.EsAdminSistema,
		Almacenes:           almacenes,
		AlmacenSeleccionado: s.AlmacenSeleccionado(),
		Rol:                 navegacion.RolActual(s.Almacenes, s.AlmacenID),
		Generacion:          s.Generacion,
	}
}
