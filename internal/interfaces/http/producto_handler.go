package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/dto"
	"github.com/jhoicas/negocify/internal/application/usecase"
	"github.com/jhoicas/negocify/internal/domain"
	"github.com/jhoicas/negocify/internal/domain/entity"
)

// ProductoHandler maneja las peticiones HTTP de productos (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// paramID lee :id; vacío es entrada inválida.
func paramID(c *fiber.Ctx) (entity.ID, error) {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return "", domain.ErrInvalidInput
	}
	return entity.ID(id), nil
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        tipo_producto_id  query  string  false  "Filtrar por tipo"
// @Param        search_name       query  string  false  "Buscar por nombre"
// @Param        search_sku        query  string  false  "Buscar por SKU"
// @Success      200  {object}  dto.ListaResponse[entity.Producto]
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	var q dto.ProductoQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Listar(c.UserContext(), GetSesion(c), q)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Tipos godoc
// @Summary      Tipos de producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListaResponse[entity.TipoProducto]
// @Router       /api/productos/tipos [get]
func (h *ProductoHandler) Tipos(c *fiber.Ctx) error {
	out, err := h.uc.Tipos(c.UserContext(), GetSesion(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Producto
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := parsearCuerpo(c, &in); err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.Crear(c.UserContext(), GetSesion(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del producto"
// @Param        body  body  dto.ProductoRequest  true  "Datos del producto"
// @Success      200   {object}  entity.Producto
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.ProductoRequest
	if err := parsearCuerpo(c, &in); err != nil {
		return responderError(c, err)
	}
	out, err := h.uc.Actualizar(c.UserContext(), GetSesion(c), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return responderError(c, err)
	}
	if err := h.uc.Eliminar(c.UserContext(), GetSesion(c), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
