package csvimport

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
)

// Creador lo que el importador necesita del caso de uso de clientes.
type Creador interface {
	Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResultado, error)
}

// Validador valida la forma de la petición; devuelve errores por campo o nil.
type Validador func(s any) map[string]string

// Resultado de una fila.
type Resultado struct {
	Linea           int    `json:"linea"`
	NumeroDocumento string `json:"numero_documento"`
	Creado          bool   `json:"creado"`
	EsViable        bool   `json:"es_viable"`
	Tipo            string `json:"tipo,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Reporte resumen de la importación.
type Reporte struct {
	Resultados []Resultado `json:"resultados"`
	Creados    int         `json:"creados"`
	Viables    int         `json:"viables"`
	Fallidos   int         `json:"fallidos"`
}

// Importer da de alta cada fila por el caso de uso; una fila con error no detiene las demás.
type Importer struct {
	uc      Creador
	validar Validador
}

// NewImporter validar puede ser nil.
func NewImporter(uc Creador, validar Validador) *Importer {
	return &Importer{uc: uc, validar: validar}
}

// Importar procesa las filas en orden. Solo un ctx cancelado corta el proceso.
func (im *Importer) Importar(ctx context.Context, filas []Fila) (*Reporte, error) {
	rep := &Reporte{Resultados: make([]Resultado, 0, len(filas))}
	for _, f := range filas {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res := im.fila(ctx, f)
		if res.Creado {
			rep.Creados++
			if res.EsViable {
				rep.Viables++
			}
		} else {
			rep.Fallidos++
		}
		rep.Resultados = append(rep.Resultados, res)
	}
	return rep, nil
}

func (im *Importer) fila(ctx context.Context, f Fila) Resultado {
	res := Resultado{Linea: f.Linea, NumeroDocumento: f.Request.NumeroDocumento}
	if f.ErrFecha != nil {
		res.Tipo = domain.KindValidation.String()
		res.Error = "fecha_nacimiento: " + f.ErrFecha.Error()
		return res
	}
	if im.validar != nil {
		if errs := im.validar(f.Request); errs != nil {
			res.Tipo = domain.KindValidation.String()
			res.Error = resumir(errs)
			return res
		}
	}
	out, err := im.uc.Create(ctx, f.Request)
	if err != nil {
		res.Tipo = domain.KindOf(err).String()
		var ce *domain.ClienteError
		if errors.As(err, &ce) {
			res.Error = ce.Message
		} else {
			res.Error = err.Error()
		}
		return res
	}
	res.Creado = true
	res.EsViable = out.EsViable
	return res
}

func resumir(errs map[string]string) string {
	campos := make([]string, 0, len(errs))
	for campo := range errs {
		campos = append(campos, campo)
	}
	sort.Strings(campos)
	partes := make([]string, 0, len(campos))
	for _, c := range campos {
		partes = append(partes, c+": "+errs[c])
	}
	return strings.Join(partes, "; ")
}
