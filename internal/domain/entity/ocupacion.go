package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOcupacionDesconocida el texto no corresponde a ninguna ocupación.
var ErrOcupacionDesconocida = errors.New("ocupación desconocida")

// Ocupacion conjunto cerrado de ocupaciones. El cero no es válido.
type Ocupacion int

const (
	OcupacionEmpleado Ocupacion = iota + 1
	OcupacionIndependiente
	OcupacionPensionado
)

// Etiqueta persistida y expuesta en la API para cada ocupación.
var etiquetasOcupacion = map[Ocupacion]string{
	OcupacionEmpleado:      "Empleado",
	OcupacionIndependiente: "Independiente",
	OcupacionPensionado:    "Pensionado",
}

// Ocupaciones devuelve todas las ocupaciones en orden estable.
func Ocupaciones() []Ocupacion {
	return []Ocupacion{OcupacionEmpleado, OcupacionIndependiente, OcupacionPensionado}
}

// Valid indica si o pertenece al conjunto.
func (o Ocupacion) Valid() bool {
	_, ok := etiquetasOcupacion[o]
	return ok
}

func (o Ocupacion) String() string {
	if s, ok := etiquetasOcupacion[o]; ok {
		return s
	}
	return fmt.Sprintf("Ocupacion(%d)", int(o))
}

// ParseOcupacion convierte una etiqueta en Ocupacion, sin distinguir mayúsculas.
func ParseOcupacion(s string) (Ocupacion, error) {
	s = strings.TrimSpace(s)
	for _, o := range Ocupaciones() {
		if strings.EqualFold(etiquetasOcupacion[o], s) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrOcupacionDesconocida, s)
}
