package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/negocify/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parsearCuerpo decodifica el JSON y aplica las reglas `validate` del DTO.
func parsearCuerpo(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describirValidacion(err))
	}
	return nil
}

func describirValidacion(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}
	partes := make([]string, 0, len(ves))
	for _, fe := range ves {
		campo := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			partes = append(partes, campo+" es requerido")
		case "email":
			partes = append(partes, campo+" no es un email válido")
		case "min":
			partes = append(partes, fmt.Sprintf("%s debe ser al menos %s", campo, fe.Param()))
		case "max":
			partes = append(partes, fmt.Sprintf("%s excede el máximo de %s", campo, fe.Param()))
		default:
			partes = append(partes, campo+" no es válido")
		}
	}
	return strings.Join(partes, "; ")
}
