package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Clientes-api/internal/domain"
)

func TestClienteError_IsPorTipo(t *testing.T) {
	assert.ErrorIs(t, domain.NotFound("123"), domain.ErrNotFound)
	assert.ErrorIs(t, domain.AlreadyExists(domain.CampoCorreoElectronico, "a@b.co"), domain.ErrDuplicate)
	assert.ErrorIs(t, domain.Validation("fecha_nacimiento", "futura"), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.ServiceFailure("falló", "ref", errors.New("io")), domain.ErrServiceFailure)
	assert.NotErrorIs(t, domain.NotFound("123"), domain.ErrDuplicate)
}

func TestAlreadyExists_MensajePorCampo(t *testing.T) {
	err := domain.AlreadyExists(domain.CampoNumeroDocumento, "12345678")
	assert.Equal(t, "Ya existe un cliente con el número de documento '12345678'", err.Error())

	err = domain.AlreadyExists(domain.CampoCorreoElectronico, "ana@correo.com")
	assert.Equal(t, "Ya existe un cliente con correo electrónico 'ana@correo.com'", err.Error())
	assert.Equal(t, domain.CampoCorreoElectronico, err.Field)
}

func TestServiceFailure_ConservaCausa(t *testing.T) {
	causa := errors.New("conexión rechazada")
	err := domain.ServiceFailure("Error al crear el cliente", "abc", causa)
	assert.ErrorIs(t, err, causa)
	assert.Contains(t, err.Error(), "conexión rechazada")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.KindNotFound, domain.KindOf(fmt.Errorf("envuelto: %w", domain.NotFound("1"))))
	assert.Equal(t, domain.KindAlreadyExists, domain.KindOf(&domain.ConstraintError{Field: domain.CampoNumeroDocumento}))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrNotFound))
	assert.Equal(t, domain.KindValidation, domain.KindOf(domain.ErrInvalidInput))
	assert.Equal(t, domain.KindServiceFailure, domain.KindOf(errors.New("otro")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", domain.KindNotFound.String())
	assert.Equal(t, "ALREADY_EXISTS", domain.KindAlreadyExists.String())
	assert.Equal(t, "VALIDATION", domain.KindValidation.String())
	assert.Equal(t, "SERVICE_FAILURE", domain.KindServiceFailure.String())
}
