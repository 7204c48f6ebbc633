package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/negocify/internal/application/auth"
	"github.com/jhoicas/negocify/internal/application/usecase"
	"github.com/jhoicas/negocify/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	VentasUC   *usecase.VentasUseCase
	ReporteUC  *usecase.ReporteUseCase
	ProductoUC *usecase.ProductoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	DolarUC    *usecase.DolarUseCase
	Metrics    *metrics.Metrics
	// LoginPorMinuto intentos de login por IP y minuto; 0 desactiva el límite.
	LoginPorMinuto int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", LimiteLogin(deps.LoginPorMinuto), authHandler.Login)
	api.Get("/shell", SesionOpcional(deps.AuthUC), authHandler.Shell)

	// Rutas protegidas (requieren Bearer Token del BFF)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/sesion", authHandler.Sesion)
	protected.Put("/sesion/almacen", authHandler.SeleccionarAlmacen)

	// Dólar (no depende del almacén)
	dolarHandler := NewDolarHandler(deps.DolarUC)
	protected.Get("/dolar", dolarHandler.Actual)

	// Datos del almacén seleccionado
	conAlmacen := protected.Group("/", RequireAlmacen())

	ventasHandler := NewVentasHandler(deps.VentasUC, deps.ReporteUC)
	ventasGroup := conAlmacen.Group("/ventas")
	ventasGroup.Get("/", ventasHandler.Analizar)
	ventasGroup.Post("/", ventasHandler.Crear)
	ventasGroup.Get("/listado", ventasHandler.Listar)
	ventasGroup.Get("/reporte", ventasHandler.Reporte)
	ventasGroup.Get("/resumen.pdf", ventasHandler.ResumenPDF)
	conAlmacen.Get("/tipos-venta", ventasHandler.TiposVenta)

	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := conAlmacen.Group("/productos")
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/tipos", productoHandler.Tipos)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios := conAlmacen.Group("/usuarios")
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
