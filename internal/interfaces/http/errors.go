package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/infrastructure/backend"
)

// statusDeError traduce un error de dominio o del backend a status HTTP y código.
// El orden importa: un UpstreamError 401 también es ErrUpstream.
func statusDeError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return fiber.StatusUnauthorized, "MISSING_TOKEN"
	case errors.Is(err, domain.ErrSesionExpirada):
		return fiber.StatusUnauthorized, "SESSION_EXPIRED"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrAlmacenAjeno):
		return fiber.StatusForbidden, "ALMACEN_AJENO"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrSinAlmacen):
		return fiber.StatusBadRequest, "ALMACEN_REQUIRED"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrSeleccionObsoleta):
		return fiber.StatusConflict, "STALE_SELECTION"
	case errors.Is(err, domain.ErrTasaNoDisponible):
		return fiber.StatusServiceUnavailable, "RATE_UNAVAILABLE"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM_ERROR"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// mensajeDeError mensaje para la interfaz: el del backend si lo hay, si no el del error.
func mensajeDeError(err error, status int) string {
	var ue *backend.UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	if status == fiber.StatusInternalServerError {
		return "error interno"
	}
	return err.Error()
}

// responderError escribe dto.ErrorResponse con el status correspondiente.
func responderError(c *fiber.Ctx, err error) error {
	status, code := statusDeError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("code", code).Msg("error en petición")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: mensajeDeError(err, status)})
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados, etc.).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codigoHTTP(fe.Code), Message: fe.Message})
	}
	return responderError(c, err)
}

func codigoHTTP(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL"
	}
}
