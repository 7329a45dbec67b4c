package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

func TestParseOcupacion_IdaYVuelta(t *testing.T) {
	for _, o := range entity.Ocupaciones() {
		got, err := entity.ParseOcupacion(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
}

func TestParseOcupacion_SinDistinguirMayusculas(t *testing.T) {
	o, err := entity.ParseOcupacion("  pensionado ")
	require.NoError(t, err)
	assert.Equal(t, entity.OcupacionPensionado, o)

	o, err = entity.ParseOcupacion("INDEPENDIENTE")
	require.NoError(t, err)
	assert.Equal(t, entity.OcupacionIndependiente, o)
}

func TestParseOcupacion_Desconocida(t *testing.T) {
	_, err := entity.ParseOcupacion("Estudiante")
	assert.ErrorIs(t, err, entity.ErrOcupacionDesconocida)

	_, err = entity.ParseOcupacion("")
	assert.ErrorIs(t, err, entity.ErrOcupacionDesconocida)
}

func TestOcupacion_Valid(t *testing.T) {
	assert.True(t, entity.OcupacionEmpleado.Valid())
	assert.False(t, entity.Ocupacion(0).Valid())
	assert.Equal(t, "Ocupacion(9)", entity.Ocupacion(9).String())
}
