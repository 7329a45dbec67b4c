package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestConstraintError(t *testing.T) {
	casos := map[string]string{
		constraintPK:     domain.CampoNumeroDocumento,
		constraintCorreo: domain.CampoCorreoElectronico,
		"otra":           "",
	}
	for nombre, campo := range casos {
		err := constraintError(&pgconn.PgError{Code: "23505", ConstraintName: nombre})
		var ce *domain.ConstraintError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, campo, ce.Field, nombre)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_x\\`, escapeLike(`100% _x\`))
	assert.Equal(t, "maría", escapeLike("maría"))
}
