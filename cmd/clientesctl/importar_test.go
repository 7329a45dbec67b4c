package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/pkg/config"
)

func usarSQLite(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "clientes.db")
	original := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			App: config.AppConfig{Env: "test", Name: "clientesctl"},
			Log: config.LogConfig{Level: "error"},
			DB:  config.DBConfig{Driver: config.DriverSQLite, SQLitePath: dbPath},
		}, nil
	}
	t.Cleanup(func() { loadConfig = original })
}

func ejecutar(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMigrate(t *testing.T) {
	usarSQLite(t)
	out, err := ejecutar(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Esquema aplicado (sqlite)")

	// Idempotente.
	_, err = ejecutar(t, "migrate")
	require.NoError(t, err)
}

func TestImportar(t *testing.T) {
	usarSQLite(t)
	_, err := ejecutar(t, "migrate")
	require.NoError(t, err)

	archivo := filepath.Join(t.TempDir(), "clientes.csv")
	contenido := "numero_documento;nombre;apellidos;fecha_nacimiento;ciudad;correo_electronico;telefono;ocupacion\n" +
		"12345678;Juan;Pérez;1990-05-15;Bogotá;juan@correo.com;3001234567;Empleado\n" +
		"87654321;Ana;Gómez;1990-05-15;Cali;JUAN@correo.com;3007654321;Independiente\n" +
		"11111111;Luis;R2D2;1990-05-15;Cali;luis@correo.com;3007654321;Empleado\n"
	require.NoError(t, os.WriteFile(archivo, []byte(contenido), 0o600))

	out, err := ejecutar(t, "importar", "--archivo", archivo, "--separador", ";", "--json=false")
	assert.ErrorIs(t, err, errFilasConError)
	assert.Contains(t, out, "línea 2: 12345678 creado (viable: true)")
	assert.Contains(t, out, "línea 3: 87654321 ALREADY_EXISTS")
	assert.Contains(t, out, "línea 4: 11111111 VALIDATION: apellidos:")
	assert.Contains(t, out, "Creados: 1 (viables: 1), fallidos: 2")
}

func TestImportar_SeparadorInvalido(t *testing.T) {
	usarSQLite(t)
	_, err := ejecutar(t, "importar", "--archivo", "no-importa.csv", "--separador", ";;")
	assert.ErrorContains(t, err, "separador inválido")
}
