package clientes

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizarCorreo recorta y pasa a minúsculas. Es la forma que se guarda y con la que se compara unicidad.
func NormalizarCorreo(correo string) string {
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	return cases.Lower(language.Und).String(strings.TrimSpace(correo))
}

func normalizarTexto(s string) string {
	return strings.TrimSpace(s)
}
