package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	msqlite "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Función SQL con minúsculas Unicode; lower() de SQLite solo cubre ASCII.
const funcLower = "unicode_lower"

var registerOnce sync.Once
var registerErr error

func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = msqlite.RegisterDeterministicScalarFunction(funcLower, 1,
			func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case nil:
					return nil, nil
				case string:
					return cases.Lower(language.Und).String(v), nil
				case []byte:
					return cases.Lower(language.Und).String(string(v)), nil
				default:
					return v, nil
				}
			})
	})
	return registerErr
}

// Store base SQLite embebida para desarrollo, pruebas y despliegues de un solo nodo.
type Store struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path.
func Open(path string) (*Store, error) {
	if err := registerFunctions(); err != nil {
		return nil, fmt.Errorf("registrar funciones sqlite: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}

	// WAL y busy_timeout para lectores concurrentes; _txlock=immediate toma el bloqueo de escritura
	// al iniciar la transacción, así la verificación previa y la escritura ven el mismo estado.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("abrir base sqlite: %w", err)
	}
	if path == ":memory:" {
		// Cada conexión tendría su propia base en memoria.
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db, path: path}, nil
}

// Migrate aplica el esquema; es idempotente.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// Schema devuelve el DDL de la tabla clientes.
func Schema() string {
	return schemaSQL
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close cierra la base.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path ruta del archivo de la base.
func (s *Store) Path() string {
	return s.path
}

// Repository repositorio de clientes sobre la conexión (fuera de transacción).
func (s *Store) Repository() *ClienteRepo {
	return NewClienteRepository(s.db)
}

// TxRunner runner de transacciones sobre esta base.
func (s *Store) TxRunner() *TxRunner {
	return &TxRunner{db: s.db}
}
