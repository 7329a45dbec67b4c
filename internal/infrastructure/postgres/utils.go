package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Clientes-api/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repos funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Nombres de restricción definidos en schema.sql.
const (
	constraintPK     = "clientes_pkey"
	constraintCorreo = "uq_clientes_correo"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// constraintError traduce una violación de unicidad al error de dominio indicando el campo.
func constraintError(err error) error {
	var field string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case constraintPK:
			field = domain.CampoNumeroDocumento
		case constraintCorreo:
			field = domain.CampoCorreoElectronico
		}
	}
	return &domain.ConstraintError{Field: field, Cause: err}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike hace que %, _ y \ del término se comparen literalmente.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
