package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/pkg/metrics"
)

// ClienteHandler maneja las peticiones HTTP del registro de clientes.
type ClienteHandler struct {
	uc      *clientes.ClienteUseCase
	val     *Validator
	metrics *metrics.Collector
}

// NewClienteHandler construye el handler. metrics puede ser nil.
func NewClienteHandler(uc *clientes.ClienteUseCase, val *Validator, m *metrics.Collector) *ClienteHandler {
	if val == nil {
		val = NewValidator(nil)
	}
	return &ClienteHandler{uc: uc, val: val, metrics: m}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if errs := h.val.Struct(in); errs != nil {
		h.metrics.Operacion("crear", metrics.ResultadoInvalido)
		return writeValidation(c, errs)
	}
	res, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fallo(c, "crear", err)
	}
	h.metrics.Operacion("crear", metrics.ResultadoOK)
	h.metrics.ClienteCreado(res.EsViable)
	esViable := res.EsViable
	return c.Status(fiber.StatusCreated).JSON(dto.ClienteEnvelope{
		Success:  true,
		Message:  res.Mensaje,
		Data:     res.NumeroDocumento,
		EsViable: &esViable,
	})
}

// List GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fallo(c, "listar", err)
	}
	h.metrics.Operacion("listar", metrics.ResultadoOK)
	return c.JSON(dto.ClienteListEnvelope{
		Success: true,
		Message: "Clientes obtenidos exitosamente",
		Data:    list,
		Total:   len(list),
	})
}

// Search GET /api/clientes/buscar?q=termino. El parámetro es obligatorio; vacío devuelve todos.
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("q") {
		return writeBadRequest(c, "MISSING_PARAMETER", "el parámetro q es obligatorio")
	}
	termino := c.Query("q")
	list, err := h.uc.Search(c.UserContext(), termino)
	if err != nil {
		return h.fallo(c, "buscar", err)
	}
	h.metrics.Operacion("buscar", metrics.ResultadoOK)
	return c.JSON(dto.ClienteListEnvelope{
		Success: true,
		Message: "Búsqueda completada exitosamente",
		Data:    list,
		Total:   len(list),
		Termino: &termino,
	})
}

// GetByID GET /api/clientes/:numeroDocumento
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByDocumento(c.UserContext(), numeroDocumento(c))
	if err != nil {
		return h.fallo(c, "obtener", err)
	}
	h.metrics.Operacion("obtener", metrics.ResultadoOK)
	return c.JSON(dto.ClienteEnvelope{
		Success: true,
		Message: "Cliente encontrado exitosamente",
		Data:    cliente,
	})
}

// Update PUT /api/clientes/:numeroDocumento
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := numeroDocumento(c)
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if errs := h.val.Struct(in); errs != nil {
		h.metrics.Operacion("actualizar", metrics.ResultadoInvalido)
		return writeValidation(c, errs)
	}
	res, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fallo(c, "actualizar", err)
	}
	h.metrics.Operacion("actualizar", metrics.ResultadoOK)
	esViable := res.EsViable
	return c.JSON(dto.ClienteEnvelope{
		Success:  true,
		Message:  res.Mensaje,
		Data:     res.NumeroDocumento,
		EsViable: &esViable,
	})
}

// Delete DELETE /api/clientes/:numeroDocumento
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id := numeroDocumento(c)
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fallo(c, "eliminar", err)
	}
	h.metrics.Operacion("eliminar", metrics.ResultadoOK)
	return c.JSON(dto.ClienteEnvelope{
		Success: true,
		Message: "Cliente eliminado exitosamente",
		Data:    id,
	})
}

func (h *ClienteHandler) fallo(c *fiber.Ctx, op string, err error) error {
	h.metrics.Operacion(op, resultadoDe(domain.KindOf(err)))
	return writeError(c, err)
}

func resultadoDe(kind domain.Kind) string {
	switch kind {
	case domain.KindNotFound:
		return metrics.ResultadoNotFound
	case domain.KindAlreadyExists:
		return metrics.ResultadoDuplicado
	case domain.KindValidation:
		return metrics.ResultadoInvalido
	default:
		return metrics.ResultadoFallo
	}
}

// numeroDocumento parámetro de ruta sin espacios alrededor.
func numeroDocumento(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Params("numeroDocumento"))
}
