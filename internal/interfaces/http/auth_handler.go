package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/auth"
	"github.com/jhoicas/negocify/internal/application/dto"
)

// AuthHandler maneja login, logout, sesión y shell del panel.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parsearCuerpo(c, &in); err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSesion(c).ID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "sesión cerrada"})
}

// Sesion godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sesion [get]
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	return c.JSON(auth.NuevaSesionResponse(GetSesion(c)))
}

// SeleccionarAlmacen godoc
// @Summary      Cambiar el almacén seleccionado
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeleccionarAlmacenRequest  true  "almacen_id"
// @Success      200   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sesion/almacen [put]
func (h *AuthHandler) SeleccionarAlmacen(c *fiber.Ctx) error {
	var in dto.SeleccionarAlmacenRequest
	if err := parsearCuerpo(c, &in); err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.SeleccionarAlmacen(c.UserContext(), GetSesion(c), in.AlmacenID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Shell godoc
// @Summary      Menú visible y acceso a una ruta del panel
// @Description  Sin token responde estado sin_sesion; no exige sesión.
// @Tags         auth
// @Produce      json
// @Param        ruta  query  string  false  "ruta del panel, por ejemplo /dashboard/ventas"
// @Success      200   {object}  dto.ShellResponse
// @Router       /api/shell [get]
func (h *AuthHandler) Shell(c *fiber.Ctx) error {
	return c.JSON(h.uc.Shell(GetSesion(c), c.Query("ruta")))
}
