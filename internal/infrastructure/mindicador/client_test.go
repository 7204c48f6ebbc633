package mindicador

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/negocify/internal/domain"
)

func servidor(t *testing.T, status int, cuerpo string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(cuerpo))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ValorDolar(t *testing.T) {
	srv := servidor(t, http.StatusOK, `{
		"version": "1.7.0",
		"codigo": "dolar",
		"nombre": "Dólar observado",
		"unidad_medida": "Pesos",
		"serie": [
			{"fecha": "2025-04-16T04:00:00.000Z", "valor": 951.33},
			{"fecha": "2025-04-15T04:00:00.000Z", "valor": 960.1}
		]
	}`)
	c := NewClient(srv.URL, time.Second)
	fijo := time.Date(2025, 4, 16, 12, 0, 0, 0, time.UTC)
	c.ahora = func() time.Time { return fijo }

	v, err := c.ValorDolar(context.Background())
	require.NoError(t, err)
	assert.True(t, v.Valor.Equal(decimal.RequireFromString("951.33")))
	assert.Equal(t, "Dólar observado", v.Fuente)
	assert.Equal(t, 16, v.Fecha.Day())
	assert.Equal(t, fijo, v.ObtenidoEn)
}

func TestClient_ValorComoTexto(t *testing.T) {
	srv := servidor(t, http.StatusOK, `{"serie":[{"fecha":"2025-04-16T04:00:00.000Z","valor":"940.5"}]}`)
	v, err := NewClient(srv.URL, time.Second).ValorDolar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "940.5", v.Valor.String())
	assert.Equal(t, "mindicador.cl", v.Fuente)
}

func TestClient_Errores(t *testing.T) {
	casos := map[string]struct {
		status int
		cuerpo string
	}{
		"http 500":       {http.StatusInternalServerError, `{}`},
		"json inválido":  {http.StatusOK, `<html>`},
		"serie vacía":    {http.StatusOK, `{"serie":[]}`},
		"valor cero":     {http.StatusOK, `{"serie":[{"fecha":"2025-04-16T04:00:00Z","valor":0}]}`},
		"valor negativo": {http.StatusOK, `{"serie":[{"fecha":"2025-04-16T04:00:00Z","valor":-3}]}`},
		"valor texto":    {http.StatusOK, `{"serie":[{"fecha":"2025-04-16T04:00:00Z","valor":"abc"}]}`},
	}
	for nombre, tc := range casos {
		t.Run(nombre, func(t *testing.T) {
			srv := servidor(t, tc.status, tc.cuerpo)
			_, err := NewClient(srv.URL, time.Second).ValorDolar(context.Background())
			assert.ErrorIs(t, err, domain.ErrTasaNoDisponible)
		})
	}
}

func TestNewClient_URLPorDefecto(t *testing.T) {
	assert.Equal(t, URLDolar, NewClient("", time.Second).url)
}
