package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrServiceFailure = errors.New("error interno del servicio")
)

// Campos de cliente con restricción de unicidad.
const (
	CampoNumeroDocumento   = "numero_documento"
	CampoCorreoElectronico = "correo_electronico"
)

var etiquetasCampo = map[string]string{
	CampoNumeroDocumento:   "el número de documento",
	CampoCorreoElectronico: "correo electrónico",
}

// Kind clasifica los errores que el servicio de clientes devuelve al transporte.
type Kind int

const (
	KindServiceFailure Kind = iota
	KindNotFound
	KindAlreadyExists
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindValidation:
		return "VALIDATION"
	default:
		return "SERVICE_FAILURE"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists:
		return ErrDuplicate
	case KindValidation:
		return ErrInvalidInput
	default:
		return ErrServiceFailure
	}
}

// ClienteError error tipado del servicio de clientes.
// Field y Value identifican el dato que provocó el error (si aplica).
// Reference solo se llena en fallos internos y sirve para cruzar la respuesta con el log.
type ClienteError struct {
	Kind      Kind
	Field     string
	Value     string
	Message   string
	Reference string
	Cause     error
}

func (e *ClienteError) Error() string {
	if e.Cause != nil && e.Kind == KindServiceFailure {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClienteError) Unwrap() error { return e.Cause }

// Is permite errors.Is(err, domain.ErrNotFound) y equivalentes por tipo.
func (e *ClienteError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NotFound cliente inexistente para el número de documento dado.
func NotFound(numeroDocumento string) *ClienteError {
	return &ClienteError{
		Kind:    KindNotFound,
		Field:   CampoNumeroDocumento,
		Value:   numeroDocumento,
		Message: fmt.Sprintf("Cliente con número de documento '%s' no encontrado", numeroDocumento),
	}
}

// AlreadyExists violación de unicidad sobre field.
func AlreadyExists(field, value string) *ClienteError {
	etiqueta, ok := etiquetasCampo[field]
	if !ok {
		etiqueta = field
	}
	return &ClienteError{
		Kind:    KindAlreadyExists,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("Ya existe un cliente con %s '%s'", etiqueta, value),
	}
}

// Validation regla de negocio violada antes de escribir.
func Validation(field, message string) *ClienteError {
	return &ClienteError{Kind: KindValidation, Field: field, Message: message}
}

// ServiceFailure fallo inesperado; la causa queda para diagnóstico, nunca para el cliente HTTP.
func ServiceFailure(message, reference string, cause error) *ClienteError {
	return &ClienteError{Kind: KindServiceFailure, Message: message, Reference: reference, Cause: cause}
}

// KindOf clasifica cualquier error. Lo desconocido es ServiceFailure.
func KindOf(err error) Kind {
	var ce *ClienteError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindAlreadyExists
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindServiceFailure
	}
}

// ConstraintError violación de unicidad detectada por el store al escribir.
// Field queda vacío si el store no permite saber qué restricción falló.
type ConstraintError struct {
	Field string
	Cause error
}

func (e *ConstraintError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("restricción de unicidad: %v", e.Cause)
	}
	return fmt.Sprintf("restricción de unicidad en %s: %v", e.Field, e.Cause)
}

func (e *ConstraintError) Unwrap() error { return e.Cause }

func (e *ConstraintError) Is(target error) bool { return target == ErrDuplicate }
