package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/application/usecase"
)

// DolarHandler valor del dólar observado.
type DolarHandler struct {
	uc *usecase.DolarUseCase
}

// NewDolarHandler construye el handler.
func NewDolarHandler(uc *usecase.DolarUseCase) *DolarHandler {
	return &DolarHandler{uc: uc}
}

// Actual godoc
// @Summary      Valor actual del dólar en pesos chilenos
// @Tags         dolar
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DolarResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dolar [get]
func (h *DolarHandler) Actual(c *fiber.Ctx) error {
	out, err := h.uc.Actual(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
