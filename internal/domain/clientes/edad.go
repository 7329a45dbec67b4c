package clientes

import (
	"errors"
	"time"
)

// Rango de edad productiva (inclusive).
const (
	EdadMinimaProductiva = 18
	EdadMaximaProductiva = 65
)

// ErrFechaFutura la fecha de nacimiento es posterior a hoy.
var ErrFechaFutura = errors.New("la fecha de nacimiento no puede ser futura")

// CalcularEdad devuelve los años cumplidos entre fechaNacimiento y hoy, comparando solo fechas de calendario.
// Un cumpleaños que aún no llega en el año actual no suma. Un nacido el 29 de febrero cumple el 1 de marzo en años no bisiestos.
func CalcularEdad(fechaNacimiento, hoy time.Time) (int, error) {
	ny, nm, nd := fechaNacimiento.Date()
	hy, hm, hd := hoy.Date()
	nacimiento := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if nacimiento.After(time.Date(hy, hm, hd, 0, 0, 0, 0, time.UTC)) {
		return 0, ErrFechaFutura
	}
	edad := hy - ny
	if hm < nm || (hm == nm && hd < nd) {
		edad--
	}
	return edad, nil
}

// EsViable indica si la edad está en el rango productivo [18, 65].
func EsViable(edad int) bool {
	return edad >= EdadMinimaProductiva && edad <= EdadMaximaProductiva
}
