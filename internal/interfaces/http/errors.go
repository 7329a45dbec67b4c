package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
)

// StatusFor código HTTP de cada tipo de error del servicio.
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindAlreadyExists:
		return fiber.StatusConflict
	case domain.KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorBody(c *fiber.Ctx, status int, code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Status:    status,
		Code:      code,
		Error:     utils.StatusMessage(status),
		Message:   message,
		Path:      c.Path(),
		Timestamp: time.Now().UTC(),
	}
}

// writeError responde con el error del caso de uso. Los fallos internos solo exponen el mensaje genérico y la referencia.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status := StatusFor(kind)
	body := errorBody(c, status, kind.String(), "Error interno del servidor")

	var ce *domain.ClienteError
	if errors.As(err, &ce) {
		body.Message = ce.Message
		body.ErrorID = ce.Reference
		if ce.Field != "" && kind == domain.KindValidation {
			body.FieldErrors = map[string]string{ce.Field: ce.Message}
		}
	}
	return c.Status(status).JSON(body)
}

func writeValidation(c *fiber.Ctx, fieldErrors map[string]string) error {
	body := errorBody(c, fiber.StatusBadRequest, "VALIDATION", "Error de validación en los datos enviados")
	body.FieldErrors = fieldErrors
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func writeBadRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, fiber.StatusBadRequest, code, message))
}
