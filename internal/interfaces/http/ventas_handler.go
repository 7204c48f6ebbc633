package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/usecase"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
	"github.com/jhoicas/negocify/internal/domain/periodo"
	"github.com/jhoicas/negocify/internal/domain/ventas"
)

// VentasHandler análisis, tabla, punto de venta y reportes de ventas (protegido).
type VentasHandler struct {
	uc      *usecase.VentasUseCase
	reporte *usecase.ReporteUseCase
}

// NewVentasHandler construye el handler.
func NewVentasHandler(uc *usecase.VentasUseCase, reporte *usecase.ReporteUseCase) *VentasHandler {
	return &VentasHandler{uc: uc, reporte: reporte}
}

// consultaVentas lee periodo, fecha, granularidad, campo, rellenar y refrescar de la query.
// Una fecha explícita inválida es error; un periodo desconocido cae en todo el historial.
func consultaVentas(c *fiber.Ctx) (dto.ConsultaVentas, error) {
	q := dto.ConsultaVentas{
		Periodo:   periodo.ParsePeriodo(c.Query("periodo")),
		Campo:     ventas.CampoDe(c.Query("campo")),
		Rellenar:  c.QueryBool("rellenar", false),
		Refrescar: c.QueryBool("refrescar", false),
	}
	if fecha := strings.TrimSpace(c.Query("fecha")); fecha != "" {
		p, err := periodo.ExactoDe(fecha)
		if err != nil {
			return q, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		q.Periodo = p
	}
	if g := strings.TrimSpace(c.Query("granularidad")); g != "" {
		q.Granularidad, _ = ventas.GranularidadDe(g)
	}
	return q, nil
}

// Analizar godoc
// @Summary      Análisis de ventas del almacén seleccionado
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        periodo       query  string  false  "anual, mensual, semanal, trimestral, semestral, ultimosSieteDias, ultimosTreintaDias, todo o YYYY-MM-DD"
// @Param        fecha         query  string  false  "día exacto YYYY-MM-DD"
// @Param        granularidad  query  string  false  "anual, mensual, semanal, ultimosSieteDias"
// @Param        campo         query  string  false  "bruto o neto"
// @Param        rellenar      query  bool    false  "incluir buckets en cero"
// @Param        refrescar     query  bool    false  "ignorar la memoria de la última lectura"
// @Success      200  {object}  dto.AnalisisVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *VentasHandler) Analizar(c *fiber.Ctx) error {
	q, err := consultaVentas(c)
	if err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.Analizar(c.UserContext(), GetSesion(c), q)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Tabla de ventas, opcionalmente de un día
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        fecha      query  string  false  "día YYYY-MM-DD"
// @Param        refrescar  query  bool    false  "ignorar la memoria de la última lectura"
// @Success      200  {object}  dto.ListadoVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/listado [get]
func (h *VentasHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.UserContext(), GetSesion(c), c.Query("fecha"), c.QueryBool("refrescar", false))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Registrar venta del punto de venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "carrito"
// @Success      201   {object}  entity.Venta
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentasHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := parsearCuerpo(c, &in); err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.Crear(c.UserContext(), GetSesion(c), in.Carrito())
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// TiposVenta godoc
// @Summary      Métodos de pago
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListaResponse[entity.TipoVenta]
// @Router       /api/tipos-venta [get]
func (h *VentasHandler) TiposVenta(c *fiber.Ctx) error {
	out, err := h.uc.TiposVenta(c.UserContext(), GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Descargar el reporte de ventas generado por el backend
// @Tags         ventas
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        periodo  query  string  false  "período del reporte"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ventas/reporte [get]
func (h *VentasHandler) Reporte(c *fiber.Ctx) error {
	archivo, err := h.reporte.Descargar(c.UserContext(), GetSesion(c), periodo.ParsePeriodo(c.Query("periodo")))
	if err != nil {
		return responderError(c, err)
	}
	return enviarArchivo(c, archivo)
}

// ResumenPDF godoc
// @Summary      Resumen de ventas en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        periodo       query  string  false  "período"
// @Param        granularidad  query  string  false  "agrupación de la serie"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/resumen.pdf [get]
func (h *VentasHandler) ResumenPDF(c *fiber.Ctx) error {
	q, err := consultaVentas(c)
	if err != nil {
		return responderError(c, err)
	}
	archivo, err := h.reporte.ResumenPDF(c.UserContext(), GetSesion(c), q)
	if err != nil {
		return responderError(c, err)
	}
	return enviarArchivo(c, archivo)
}

func enviarArchivo(c *fiber.Ctx, a *entity.Archivo) error {
	contentType := a.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Attachment(a.Nombre)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(a.Contenido)
}
