package clientes

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
// Si fn retorna error se hace rollback y el error se devuelve sin modificar.
type TxRunner interface {
	RunClientes(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
}
