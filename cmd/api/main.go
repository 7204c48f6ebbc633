package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/negocify/docs"
	"github.com/jhoicas/negocify/internal/application/auth"
	"github.com/jhoicas/negocify/internal/application/ports"
	"github.com/jhoicas/negocify/internal/application/usecase"
	"github.com/jhoicas/negocify/internal/domain/repository"
	"github.com/jhoicas/negocify/internal/infrastructure/backend"
	"github.com/jhoicas/negocify/internal/infrastructure/cache"
	"github.com/jhoicas/negocify/internal/infrastructure/memoria"
	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
	"github.com/jhoicas/negocify/internal/infrastructure/mindicador"
	infrapdf "github.com/jhoicas/negocify/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/negocify/internal/interfaces/http"
	"github.com/jhoicas/negocify/pkg/config"
	"github.com/jhoicas/negocify/pkg/logger"
)

// @title        Negocify API
// @version      1.0
// @description  Backend-for-frontend del panel de ventas, inventario y usuarios.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando aplicación")

	// Montos como números JSON para los gráficos.
	decimal.MarshalJSONWithoutQuotes = true
	docs.SwaggerInfo.Title = cfg.App.Name

	ctx := context.Background()
	m := metrics.New()

	// Sesiones y caché del dólar: Redis si está configurado, si no en memoria (una sola instancia).
	sesionTTL := time.Duration(cfg.JWT.Expiration) * time.Minute
	var (
		sesiones  repository.SesionRepository
		cacheTasa ports.CacheTasa
	)
	if cfg.Redis.Enabled() {
		rdb, err := cache.New(ctx, cache.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sesiones = cache.NewSesionStore(rdb, sesionTTL)
		cacheTasa = cache.NewTasaCache(rdb, 0)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones en Redis")
	} else {
		sesiones = memoria.NewSesionStore(sesionTTL)
		cacheTasa = memoria.NewTasaCache()
		log.Warn().Msg("REDIS_ADDR vacío: sesiones en memoria")
	}

	api := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout(), m)
	dolar := mindicador.NewCachedProvider(
		mindicador.NewClient(cfg.Dolar.URL, cfg.Backend.Timeout()),
		cacheTasa,
		cfg.Dolar.TTL(),
		m,
	)

	authUC := auth.NewAuthUseCase(api, sesiones, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ventasUC := usecase.NewVentasUseCase(api, sesiones, dolar, m, usecase.VentasConfig{
		IVA:         &cfg.Ventas.IVA,
		SnapshotTTL: cfg.Ventas.SnapshotTTL(),
	})
	reporteUC := usecase.NewReporteUseCase(api, sesiones, m, ventasUC, infrapdf.NewMarotoResumenGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(m))
	app.Use(httpRouter.SecureHeaders(cfg.App.Env == "development"))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		VentasUC:       ventasUC,
		ReporteUC:      reporteUC,
		ProductoUC:     usecase.NewProductoUseCase(api, sesiones, m),
		UsuarioUC:      usecase.NewUsuarioUseCase(api, sesiones, m),
		DolarUC:        usecase.NewDolarUseCase(dolar),
		Metrics:        m,
		LoginPorMinuto: cfg.HTTP.LoginRatePerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
