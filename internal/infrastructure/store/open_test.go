package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/pkg/config"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	b, err := Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "c.db")})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Migrate(ctx))
	require.NoError(t, b.Ping(ctx))

	list, err := b.Repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, config.DriverSQLite, b.Driver)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "oracle")
}
