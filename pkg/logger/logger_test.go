package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restaurar deja el logger global como estaba antes del test.
func restaurar(t *testing.T) {
	global, porDefecto := log.Logger, zerolog.DefaultContextLogger
	t.Cleanup(func() { log.Logger, zerolog.DefaultContextLogger = global, porDefecto })
}

func TestNew_JSONConNivelYServicio(t *testing.T) {
	restaurar(t)
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Service: "negocify-bff", Output: &buf})

	l.Info().Msg("no debe salir")
	assert.Empty(t, buf.String())

	l.Warn().Str("k", "v").Msg("aviso")
	var linea map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &linea))
	assert.Equal(t, "warn", linea["level"])
	assert.Equal(t, "aviso", linea["message"])
	assert.Equal(t, "v", linea["k"])
	assert.Equal(t, "negocify-bff", linea["service"])
}

func TestConRequestID(t *testing.T) {
	restaurar(t)
	var buf bytes.Buffer
	New(Config{Env: "production", Level: "info", Output: &buf})

	ctx := ConRequestID(context.Background(), "abc")
	log.Ctx(ctx).Info().Msg("hola")

	var linea map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &linea))
	assert.Equal(t, "abc", linea["request_id"])
	assert.NotContains(t, linea, "service")

	base := context.Background()
	assert.Equal(t, base, ConRequestID(base, ""))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel(" ERROR "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}
