package repository

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
// Las búsquedas devuelven (nil, nil) cuando no hay registro; un error siempre es fallo de E/S.
// Create y Update devuelven *domain.ConstraintError ante violaciones de unicidad
// y Update/Delete devuelven domain.ErrNotFound si la fila ya no existe.
type ClienteRepository interface {
	ExistsByID(ctx context.Context, numeroDocumento string) (bool, error)
	GetByID(ctx context.Context, numeroDocumento string) (*entity.Cliente, error)
	GetByEmail(ctx context.Context, correo string) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
	// SearchByNombreOApellidos busca termino como subcadena, sin distinguir mayúsculas, en nombre o apellidos.
	SearchByNombreOApellidos(ctx context.Context, termino string) ([]*entity.Cliente, error)
	// Create inserta y completa CreatedAt/UpdatedAt con los valores asignados por el store.
	Create(ctx context.Context, cliente *entity.Cliente) error
	// Update reemplaza los campos mutables y refresca UpdatedAt.
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, numeroDocumento string) error
}
