package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/postgres"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE clientes")
	require.NoError(t, err)
	return pool
}

func cliente(doc, nombre, apellidos, correo string) *entity.Cliente {
	return &entity.Cliente{
		NumeroDocumento:   doc,
		Nombre:            nombre,
		Apellidos:         apellidos,
		FechaNacimiento:   time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		Ciudad:            "Bogotá",
		CorreoElectronico: correo,
		Telefono:          "3001234567",
		Ocupacion:         entity.OcupacionIndependiente,
		EsViable:          true,
	}
}

func TestClienteRepo_Postgres(t *testing.T) {
	pool := newPool(t)
	ctx := context.Background()
	repo := postgres.NewClienteRepository(pool)

	c := cliente("1", "Ana María", "Gómez", "ana@correo.com")
	require.NoError(t, repo.Create(ctx, c))
	assert.False(t, c.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.OcupacionIndependiente, got.Ocupacion)
	assert.True(t, got.FechaNacimiento.Equal(c.FechaNacimiento))

	got, err = repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Create(ctx, cliente("2", "Luis", "Martínez", "ana@correo.com"))
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.CampoCorreoElectronico, ce.Field)

	require.NoError(t, repo.Create(ctx, cliente("2", "Luis", "Martínez", "luis@correo.com")))
	list, err := repo.SearchByNombreOApellidos(ctx, "MAR")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	c.Ciudad = "Cali"
	require.NoError(t, repo.Update(ctx, c))
	assert.False(t, c.UpdatedAt.Before(c.CreatedAt))

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), domain.ErrNotFound)
}

func TestTxRunner_Postgres(t *testing.T) {
	pool := newPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	fallo := errors.New("abortar")

	err := runner.RunClientes(ctx, func(repo repository.ClienteRepository) error {
		require.NoError(t, repo.Create(ctx, cliente("1", "Ana", "Gómez", "ana@correo.com")))
		return fallo
	})
	assert.ErrorIs(t, err, fallo)

	existe, err := postgres.NewClienteRepository(pool).ExistsByID(ctx, "1")
	require.NoError(t, err)
	assert.False(t, existe)
}
