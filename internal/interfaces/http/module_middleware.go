package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/dto"
)

// RequireAlmacen corta las rutas de datos del almacén cuando la sesión aún no tiene uno
// seleccionado. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay sesión en el contexto.
//   - 400 ALMACEN_REQUIRED si no hay almacén seleccionado.
func RequireAlmacen() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSesion(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada en el contexto",
			})
		}
		if s.AlmacenSeleccionado() == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "ALMACEN_REQUIRED",
				Message: "selecciona un almacén para continuar",
			})
		}
		return c.Next()
	}
}
