package clientes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/domain/clientes"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalcularEdad_AniosCumplidos(t *testing.T) {
	hoy := fecha(2026, time.October, 18)

	casos := []struct {
		nombre     string
		nacimiento time.Time
		esperada   int
	}{
		{"cumpleaños ya pasó este año", fecha(1990, time.May, 15), 36},
		{"cumpleaños es hoy", fecha(2008, time.October, 18), 18},
		{"cumpleaños mañana", fecha(2008, time.October, 19), 17},
		{"mes siguiente", fecha(1960, time.November, 1), 65},
		{"nacido hoy", fecha(2026, time.October, 18), 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			edad, err := clientes.CalcularEdad(c.nacimiento, hoy)
			require.NoError(t, err)
			assert.Equal(t, c.esperada, edad)
		})
	}
}

func TestCalcularEdad_FechaFutura(t *testing.T) {
	hoy := fecha(2026, time.October, 18)
	_, err := clientes.CalcularEdad(fecha(2026, time.October, 19), hoy)
	assert.ErrorIs(t, err, clientes.ErrFechaFutura)
}

// La hora del día no debe convertir "hoy" en una fecha futura.
func TestCalcularEdad_IgnoraHora(t *testing.T) {
	hoy := time.Date(2026, time.October, 18, 0, 0, 1, 0, time.UTC)
	nacimiento := time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC)
	edad, err := clientes.CalcularEdad(nacimiento, hoy)
	require.NoError(t, err)
	assert.Equal(t, 0, edad)
}

func TestCalcularEdad_Bisiesto(t *testing.T) {
	nacimiento := fecha(2000, time.February, 29)

	edad, err := clientes.CalcularEdad(nacimiento, fecha(2001, time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, 0, edad, "el 28 de febrero aún no cumple")

	edad, err = clientes.CalcularEdad(nacimiento, fecha(2001, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, edad)

	edad, err = clientes.CalcularEdad(nacimiento, fecha(2004, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, 4, edad)
}

func TestEsViable_Limites(t *testing.T) {
	assert.False(t, clientes.EsViable(17))
	assert.True(t, clientes.EsViable(18))
	assert.True(t, clientes.EsViable(40))
	assert.True(t, clientes.EsViable(65))
	assert.False(t, clientes.EsViable(66))
	assert.False(t, clientes.EsViable(0))
}
