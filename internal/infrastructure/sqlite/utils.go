package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/Clientes-api/internal/domain"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Querier es lo común entre *sql.DB y *sql.Tx; los repos funcionan con ambos.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	formatoFecha     = "2006-01-02"
	formatoTimestamp = "2006-01-02T15:04:05.000Z"
)

// isUniqueViolation SQLite reporta PRIMARY KEY y UNIQUE como "UNIQUE constraint failed: tabla.columna".
func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) && se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// constraintError traduce la violación al error de dominio; el campo sale del mensaje.
func constraintError(err error) error {
	msg := err.Error()
	var field string
	switch {
	case strings.Contains(msg, "clientes.numero_documento"):
		field = domain.CampoNumeroDocumento
	case strings.Contains(msg, "clientes.correo_electronico"):
		field = domain.CampoCorreoElectronico
	}
	return &domain.ConstraintError{Field: field, Cause: err}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(formatoTimestamp, s)
}
