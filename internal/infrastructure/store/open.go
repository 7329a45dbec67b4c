package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Clientes-api/pkg/config"
)

// Backend reúne lo que la aplicación necesita de la persistencia, sea cual sea el driver.
type Backend struct {
	Driver  string
	Repo    repository.ClienteRepository
	Tx      clientes.TxRunner
	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func()
}

// Ping verifica la conexión (usado por /health).
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Migrate aplica el esquema de la tabla clientes.
func (b *Backend) Migrate(ctx context.Context) error {
	return b.migrate(ctx)
}

// Close libera pool o archivo.
func (b *Backend) Close() {
	b.close()
}

// Open abre el backend según cfg.Driver.
func Open(ctx context.Context, cfg config.DBConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conectar postgres: %w", err)
		}
		return &Backend{
			Driver:  cfg.Driver,
			Repo:    postgres.NewClienteRepository(pool),
			Tx:      postgres.NewTxRunner(pool),
			ping:    pool.Ping,
			migrate: func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
			close:   pool.Close,
		}, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("ping sqlite: %w", err)
		}
		return &Backend{
			Driver:  cfg.Driver,
			Repo:    s.Repository(),
			Tx:      s.TxRunner(),
			ping:    s.Ping,
			migrate: s.Migrate,
			close:   func() { _ = s.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido: %q", cfg.Driver)
	}
}
