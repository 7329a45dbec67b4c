package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ clientes.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// RunClientes inicia una transacción, ejecuta fn con un repo atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunClientes(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewClienteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
