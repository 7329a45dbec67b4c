package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `numero_documento, nombre, apellidos, fecha_nacimiento, ciudad,
	correo_electronico, telefono, ocupacion, es_viable, created_at, updated_at`

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// ExistsByID indica si hay un cliente con ese número de documento.
func (r *ClienteRepo) ExistsByID(ctx context.Context, numeroDocumento string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE numero_documento = $1)`, numeroDocumento,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists cliente: %w", err)
	}
	return existe, nil
}

// GetByID obtiene un cliente por número de documento.
func (r *ClienteRepo) GetByID(ctx context.Context, numeroDocumento string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE numero_documento = $1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, numeroDocumento))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un cliente por correo ya normalizado.
func (r *ClienteRepo) GetByEmail(ctx context.Context, correo string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE correo_electronico = $1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, correo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by correo: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes en orden de alta.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY created_at, numero_documento`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return collectClientes(rows)
}

// SearchByNombreOApellidos usa ILIKE; los comodines del término se escapan.
func (r *ClienteRepo) SearchByNombreOApellidos(ctx context.Context, termino string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE nombre ILIKE '%' || $1 || '%' OR apellidos ILIKE '%' || $1 || '%'
		ORDER BY apellidos, nombre`
	rows, err := r.q.Query(ctx, query, escapeLike(termino))
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	return collectClientes(rows)
}

// Create persiste un nuevo cliente; created_at y updated_at los asigna la base.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (numero_documento, nombre, apellidos, fecha_nacimiento, ciudad,
			correo_electronico, telefono, ocupacion, es_viable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.NumeroDocumento, c.Nombre, c.Apellidos, c.FechaNacimiento, c.Ciudad,
		c.CorreoElectronico, c.Telefono, c.Ocupacion.String(), c.EsViable,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return constraintError(err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables; numero_documento y created_at no cambian.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, apellidos = $3, fecha_nacimiento = $4, ciudad = $5,
			correo_electronico = $6, telefono = $7, ocupacion = $8, es_viable = $9, updated_at = now()
		WHERE numero_documento = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.NumeroDocumento, c.Nombre, c.Apellidos, c.FechaNacimiento, c.Ciudad,
		c.CorreoElectronico, c.Telefono, c.Ocupacion.String(), c.EsViable,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return constraintError(err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por número de documento.
func (r *ClienteRepo) Delete(ctx context.Context, numeroDocumento string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE numero_documento = $1`, numeroDocumento)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var ocupacion string
	err := row.Scan(
		&c.NumeroDocumento, &c.Nombre, &c.Apellidos, &c.FechaNacimiento, &c.Ciudad,
		&c.CorreoElectronico, &c.Telefono, &ocupacion, &c.EsViable, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Un valor fuera del conjunto es corrupción de datos, no un caso normal.
	c.Ocupacion, err = entity.ParseOcupacion(ocupacion)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: ocupacion almacenada: %w", c.NumeroDocumento, err)
	}
	return &c, nil
}

func collectClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	list := make([]*entity.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
