package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
)

// Charsets soportados para el archivo de entrada.
const (
	CharsetUTF8        = "utf-8"
	CharsetISO88591    = "iso-8859-1"
	CharsetWindows1252 = "windows-1252"
)

// ErrColumnaFaltante el encabezado no trae una columna obligatoria.
var ErrColumnaFaltante = errors.New("columna obligatoria ausente")

// Opciones de lectura del CSV.
type Opciones struct {
	Charset   string // vacío = utf-8
	Separador rune   // 0 = ','
}

// Fila una línea de datos ya convertida a petición de alta.
type Fila struct {
	Linea   int
	Request dto.CreateClienteRequest
	// ErrFecha no nil si fecha_nacimiento no se pudo interpretar.
	ErrFecha error
}

// Alias aceptados por columna (encabezados en minúsculas y sin espacios alrededor).
var alias = map[string]string{
	"numero_documento":   "numero_documento",
	"numerodocumento":    "numero_documento",
	"número_documento":   "numero_documento",
	"documento":          "numero_documento",
	"nombre":             "nombre",
	"apellidos":          "apellidos",
	"fecha_nacimiento":   "fecha_nacimiento",
	"fechanacimiento":    "fecha_nacimiento",
	"ciudad":             "ciudad",
	"correo_electronico": "correo_electronico",
	"correo_electrónico": "correo_electronico",
	"correo":             "correo_electronico",
	"email":              "correo_electronico",
	"telefono":           "telefono",
	"teléfono":           "telefono",
	"ocupacion":          "ocupacion",
	"ocupación":          "ocupacion",
}

var columnas = []string{
	"numero_documento", "nombre", "apellidos", "fecha_nacimiento",
	"ciudad", "correo_electronico", "telefono", "ocupacion",
}

// decodificador envuelve r según el charset.
func decodificador(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		// Quita el BOM si viene.
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case CharsetISO88591, "latin1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case CharsetWindows1252, "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
}

// Leer interpreta el CSV completo. La primera línea es el encabezado.
func Leer(r io.Reader, opts Opciones) ([]Fila, error) {
	dec, err := decodificador(r, opts.Charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bufio.NewReader(dec))
	if opts.Separador != 0 {
		cr.Comma = opts.Separador
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("archivo vacío: %w", ErrColumnaFaltante)
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := indices(header)
	if err != nil {
		return nil, err
	}

	var filas []Fila
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// *csv.ParseError ya incluye la línea.
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		if vacia(rec) {
			continue
		}
		// encoding/csv omite las líneas vacías y un campo entre comillas puede ocupar varias.
		linea, _ := cr.FieldPos(0)
		filas = append(filas, convertir(linea, rec, idx))
	}
	return filas, nil
}

func indices(header []string) (map[string]int, error) {
	lower := cases.Lower(language.Und)
	idx := make(map[string]int, len(columnas))
	for i, h := range header {
		nombre, ok := alias[lower.String(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, dup := idx[nombre]; !dup {
			idx[nombre] = i
		}
	}
	for _, c := range columnas {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumnaFaltante, c)
		}
	}
	return idx, nil
}

func convertir(linea int, rec []string, idx map[string]int) Fila {
	campo := func(nombre string) string {
		i := idx[nombre]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	f := Fila{
		Linea: linea,
		Request: dto.CreateClienteRequest{
			NumeroDocumento: campo("numero_documento"),
			ClienteDatos: dto.ClienteDatos{
				Nombre:            campo("nombre"),
				Apellidos:         campo("apellidos"),
				Ciudad:            campo("ciudad"),
				CorreoElectronico: campo("correo_electronico"),
				Telefono:          campo("telefono"),
				Ocupacion:         campo("ocupacion"),
			},
		},
	}
	if s := campo("fecha_nacimiento"); s != "" {
		fecha, err := dto.ParseFecha(s)
		if err != nil {
			f.ErrFecha = err
		} else {
			f.Request.FechaNacimiento = fecha
		}
	}
	return f
}

func vacia(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
