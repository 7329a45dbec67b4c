// clientesctl tareas de operación del registro de clientes: aplicar el esquema
// e importar clientes desde CSV.
//
// Uso:
//
//	go run ./cmd/clientesctl migrate
//	go run ./cmd/clientesctl importar --archivo clientes.csv --charset iso-8859-1 --separador ';'
//
// La conexión se toma de las mismas variables de entorno que la API (DB_DRIVER, DATABASE_URL, SQLITE_PATH...).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
