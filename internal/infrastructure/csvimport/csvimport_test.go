package csvimport

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
)

const csvUTF8 = "\ufeffNúmero_Documento,Nombre,Apellidos,Fecha_Nacimiento,Ciudad,Correo,Teléfono,Ocupación\n" +
	"123,José,Muñoz,1990-05-15,Bogotá,jose@correo.com,3001234567,Empleado\n" +
	"\n" +
	"456,Ana,Peña,15/05/1990,Cali,ana@correo.com,3007654321,Independiente\n"

func TestLeer_UTF8ConBOM(t *testing.T) {
	filas, err := Leer(strings.NewReader(csvUTF8), Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 2, "las líneas vacías se ignoran")

	assert.Equal(t, 2, filas[0].Linea)
	assert.Equal(t, "123", filas[0].Request.NumeroDocumento)
	assert.Equal(t, "José", filas[0].Request.Nombre)
	assert.Equal(t, "Muñoz", filas[0].Request.Apellidos)
	assert.Equal(t, "1990-05-15", filas[0].Request.FechaNacimiento.String())
	assert.NoError(t, filas[0].ErrFecha)

	assert.Equal(t, 4, filas[1].Linea)
	assert.Error(t, filas[1].ErrFecha, "solo se acepta AAAA-MM-DD")
}

func TestLeer_LineaConCampoMultilinea(t *testing.T) {
	texto := "numero_documento,nombre,apellidos,fecha_nacimiento,ciudad,correo,telefono,ocupacion\n" +
		"1,Ana,\"Gómez\nde la Torre\",1990-05-15,Cali,ana@correo.com,300,Empleado\n" +
		"\n" +
		"2,Luis,Ruiz,1990-05-15,Cali,luis@correo.com,301,Empleado\n"
	filas, err := Leer(strings.NewReader(texto), Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, 2, filas[0].Linea)
	assert.Equal(t, 5, filas[1].Linea, "cuenta las líneas físicas del archivo")
}

func TestLeer_ISO88591(t *testing.T) {
	texto := "documento;nombre;apellidos;fecha_nacimiento;ciudad;email;telefono;ocupacion\n" +
		"789;Ñandú;Gómez;1980-01-01;Medellín;n@correo.com;300;Pensionado\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(texto)
	require.NoError(t, err)

	filas, err := Leer(bytes.NewReader([]byte(latin1)), Opciones{Charset: "ISO-8859-1", Separador: ';'})
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "Ñandú", filas[0].Request.Nombre)
	assert.Equal(t, "Medellín", filas[0].Request.Ciudad)
}

func TestLeer_ColumnaFaltante(t *testing.T) {
	_, err := Leer(strings.NewReader("numero_documento,nombre\n1,Ana\n"), Opciones{})
	assert.ErrorIs(t, err, ErrColumnaFaltante)

	_, err = Leer(strings.NewReader(""), Opciones{})
	assert.ErrorIs(t, err, ErrColumnaFaltante)
}

func TestLeer_CharsetDesconocido(t *testing.T) {
	_, err := Leer(strings.NewReader(csvUTF8), Opciones{Charset: "ebcdic"})
	assert.ErrorContains(t, err, "ebcdic")
}

type creadorFalso struct {
	existentes map[string]bool
}

func (c *creadorFalso) Create(_ context.Context, in dto.CreateClienteRequest) (*dto.ClienteResultado, error) {
	if c.existentes[in.NumeroDocumento] {
		return nil, domain.AlreadyExists(domain.CampoNumeroDocumento, in.NumeroDocumento)
	}
	c.existentes[in.NumeroDocumento] = true
	edad := time.Now().Year() - in.FechaNacimiento.Year()
	return &dto.ClienteResultado{NumeroDocumento: in.NumeroDocumento, EsViable: edad > 18 && edad < 65}, nil
}

func TestImportar_Reporte(t *testing.T) {
	filas, err := Leer(strings.NewReader(csvUTF8+
		"123,Otro,Igual,1985-02-02,Pasto,otro@correo.com,3000000000,Empleado\n"+
		"999,Luis,Ruiz,1990-01-01,Neiva,luis@correo.com,3000000001,Empleado\n"), Opciones{})
	require.NoError(t, err)

	validar := func(s any) map[string]string {
		if s.(dto.CreateClienteRequest).NumeroDocumento == "999" {
			return map[string]string{"telefono": "inválido", "ciudad": "inválida"}
		}
		return nil
	}
	rep, err := NewImporter(&creadorFalso{existentes: map[string]bool{}}, validar).Importar(context.Background(), filas)
	require.NoError(t, err)
	require.Len(t, rep.Resultados, 4)

	assert.True(t, rep.Resultados[0].Creado)
	assert.True(t, rep.Resultados[0].EsViable)

	assert.False(t, rep.Resultados[1].Creado)
	assert.Equal(t, domain.KindValidation.String(), rep.Resultados[1].Tipo)

	assert.Equal(t, domain.KindAlreadyExists.String(), rep.Resultados[2].Tipo)
	assert.Equal(t, "Ya existe un cliente con el número de documento '123'", rep.Resultados[2].Error)

	assert.Equal(t, "ciudad: inválida; telefono: inválido", rep.Resultados[3].Error)

	assert.Equal(t, 1, rep.Creados)
	assert.Equal(t, 1, rep.Viables)
	assert.Equal(t, 3, rep.Fallidos)
}

func TestImportar_ContextoCancelado(t *testing.T) {
	filas, err := Leer(strings.NewReader(csvUTF8), Opciones{})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := NewImporter(&creadorFalso{existentes: map[string]bool{}}, nil).Importar(ctx, filas)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, rep.Resultados)
}
