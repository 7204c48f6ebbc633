package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/infrastructure/backend"
)

func TestStatusDeError(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
		code   string
	}{
		{"sin token", domain.ErrMissingToken, 401, "MISSING_TOKEN"},
		{"backend 401", &backend.UpstreamError{Status: 401}, 401, "UNAUTHORIZED"},
		{"sesión expirada", domain.ErrSesionExpirada, 401, "SESSION_EXPIRED"},
		{"almacén ajeno", domain.ErrAlmacenAjeno, 403, "ALMACEN_AJENO"},
		{"backend 403", &backend.UpstreamError{Status: 403}, 403, "FORBIDDEN"},
		{"backend 404", fmt.Errorf("producto: %w", &backend.UpstreamError{Status: 404}), 404, "NOT_FOUND"},
		{"sin almacén", domain.ErrSinAlmacen, 400, "ALMACEN_REQUIRED"},
		{"validación", fmt.Errorf("%w: x", domain.ErrInvalidInput), 400, "VALIDATION"},
		{"selección obsoleta", domain.ErrSeleccionObsoleta, 409, "STALE_SELECTION"},
		{"tasa", domain.ErrTasaNoDisponible, 503, "RATE_UNAVAILABLE"},
		{"timeout", fmt.Errorf("ventas: %w", context.DeadlineExceeded), 504, "UPSTREAM_TIMEOUT"},
		{"backend 500", &backend.UpstreamError{Status: 500}, 502, "UPSTREAM_ERROR"},
		{"desconocido", errors.New("boom"), 500, "INTERNAL"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			status, code := statusDeError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestMensajeDeError(t *testing.T) {
	assert.Equal(t, "stock insuficiente", mensajeDeError(&backend.UpstreamError{Status: 422, Message: "stock insuficiente"}, http.StatusBadRequest))
	assert.Equal(t, "error interno", mensajeDeError(errors.New("detalle interno"), http.StatusInternalServerError))
	assert.Equal(t, domain.ErrSinAlmacen.Error(), mensajeDeError(domain.ErrSinAlmacen, http.StatusBadRequest))
}

func TestBearer(t *testing.T) {
	assert.Equal(t, "abc", bearer("Bearer abc"))
	assert.Equal(t, "abc", bearer("bearer  abc "))
	assert.Empty(t, bearer("Basic abc"))
	assert.Empty(t, bearer(""))
}
