package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"

	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
	"github.com/jhoicas/negocify/pkg/logger"
)

// RequestLogger registra método, ruta, status y latencia de cada petición y alimenta las métricas.
// Va después de requestid: el contexto de la petición lleva un logger con su request_id.
func RequestLogger(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		requestID := c.GetRespHeader(fiber.HeaderXRequestID)
		c.SetUserContext(logger.ConRequestID(c.UserContext(), requestID))
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ruta := c.Route().Path
		m.Peticion(ruta, status, inicio)

		l := zerolog.Ctx(c.UserContext())
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = l.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(inicio)).
			Msg("request")
		return nil
	}
}

// SecureHeaders cabeceras de seguridad de unrolled/secure montadas sobre Fiber.
func SecureHeaders(desarrollo bool) fiber.Handler {
	mw := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      desarrollo,
	})
	return adaptor.HTTPMiddleware(mw.Handler)
}

// LimiteLogin limita los intentos de login por IP.
func LimiteLogin(porMinuto int) fiber.Handler {
	if porMinuto <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	limiter := httprate.Limit(
		porMinuto,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"demasiados intentos, espera un minuto"}`))
		}),
	)
	return adaptor.HTTPMiddleware(limiter)
}

// SesionOpcional carga la sesión si viene un token válido; sin token o con uno inválido sigue sin sesión.
func SesionOpcional(a autenticador) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Next()
		}
		s, err := a.Autenticar(c.UserContext(), token)
		if err != nil {
			log.Debug().Err(err).Msg("shell sin sesión válida")
			return c.Next()
		}
		c.Locals(LocalSesion, s)
		return c.Next()
	}
}

// bearer extrae el token de "Bearer <token>"; vacío si el formato no calza.
func bearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
