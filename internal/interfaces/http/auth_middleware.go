package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

// LocalSesion key de Fiber Locals con la *entity.Sesion autenticada.
const LocalSesion = "sesion"

// autenticador es el contrato mínimo que necesita el middleware. Lo implementa *auth.AuthUseCase.
type autenticador interface {
	Autenticar(ctx context.Context, token string) (*entity.Sesion, error)
}

// AuthMiddleware valida el Bearer Token del BFF y carga la sesión en c.Locals.
func AuthMiddleware(a autenticador) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sesion, err := a.Autenticar(c.UserContext(), tokenString)
		if err != nil {
			return responderError(c, err)
		}
		c.Locals(LocalSesion, sesion)
		return c.Next()
	}
}

// GetSesion devuelve la sesión del contexto (después de AuthMiddleware) o nil.
func GetSesion(c *fiber.Ctx) *entity.Sesion {
	s, _ := c.Locals(LocalSesion).(*entity.Sesion)
	return s
}
