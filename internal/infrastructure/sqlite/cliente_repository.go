package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `numero_documento, nombre, apellidos, fecha_nacimiento, ciudad,
	correo_electronico, telefono, ocupacion, es_viable, created_at, updated_at`

const nowSQL = `strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`

// ClienteRepo implementación de ClienteRepository sobre SQLite (usable con db o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// ExistsByID indica si hay un cliente con ese número de documento.
func (r *ClienteRepo) ExistsByID(ctx context.Context, numeroDocumento string) (bool, error) {
	var existe bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE numero_documento = ?)`, numeroDocumento,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists cliente: %w", err)
	}
	return existe, nil
}

// GetByID obtiene un cliente por número de documento; (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, numeroDocumento string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE numero_documento = ?`
	c, err := scanCliente(r.q.QueryRowContext(ctx, query, numeroDocumento))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un cliente por correo ya normalizado.
func (r *ClienteRepo) GetByEmail(ctx context.Context, correo string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE correo_electronico = ?`
	c, err := scanCliente(r.q.QueryRowContext(ctx, query, correo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by correo: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes en orden de alta.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY created_at, numero_documento`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return collectClientes(rows)
}

// SearchByNombreOApellidos compara en minúsculas Unicode con unicode_lower.
func (r *ClienteRepo) SearchByNombreOApellidos(ctx context.Context, termino string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE unicode_lower(nombre) LIKE '%' || unicode_lower(?1) || '%' ESCAPE '\'
		   OR unicode_lower(apellidos) LIKE '%' || unicode_lower(?1) || '%' ESCAPE '\'
		ORDER BY apellidos, nombre`
	rows, err := r.q.QueryContext(ctx, query, escapeLike(termino))
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	return collectClientes(rows)
}

// Create inserta el cliente y toma created_at y updated_at de la base.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (numero_documento, nombre, apellidos, fecha_nacimiento, ciudad,
			correo_electronico, telefono, ocupacion, es_viable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at, updated_at`
	var createdAt, updatedAt string
	err := r.q.QueryRowContext(ctx, query,
		c.NumeroDocumento, c.Nombre, c.Apellidos, c.FechaNacimiento.Format(formatoFecha), c.Ciudad,
		c.CorreoElectronico, c.Telefono, c.Ocupacion.String(), c.EsViable,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return constraintError(err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return setTimestamps(c, createdAt, updatedAt)
}

// Update reemplaza los campos mutables. ErrNotFound si la fila ya no existe.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = ?2, apellidos = ?3, fecha_nacimiento = ?4, ciudad = ?5,
			correo_electronico = ?6, telefono = ?7, ocupacion = ?8, es_viable = ?9, updated_at = ` + nowSQL + `
		WHERE numero_documento = ?1
		RETURNING created_at, updated_at`
	var createdAt, updatedAt string
	err := r.q.QueryRowContext(ctx, query,
		c.NumeroDocumento, c.Nombre, c.Apellidos, c.FechaNacimiento.Format(formatoFecha), c.Ciudad,
		c.CorreoElectronico, c.Telefono, c.Ocupacion.String(), c.EsViable,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return constraintError(err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return setTimestamps(c, createdAt, updatedAt)
}

// Delete elimina un cliente por número de documento.
func (r *ClienteRepo) Delete(ctx context.Context, numeroDocumento string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM clientes WHERE numero_documento = ?`, numeroDocumento)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCliente(row rowScanner) (*entity.Cliente, error) {
	var c entity.Cliente
	var fechaNacimiento, ocupacion, createdAt, updatedAt string
	err := row.Scan(
		&c.NumeroDocumento, &c.Nombre, &c.Apellidos, &fechaNacimiento, &c.Ciudad,
		&c.CorreoElectronico, &c.Telefono, &ocupacion, &c.EsViable, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.FechaNacimiento, err = time.Parse(formatoFecha, fechaNacimiento)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: fecha_nacimiento: %w", c.NumeroDocumento, err)
	}
	c.Ocupacion, err = entity.ParseOcupacion(ocupacion)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: ocupacion almacenada: %w", c.NumeroDocumento, err)
	}
	if err := setTimestamps(&c, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func setTimestamps(c *entity.Cliente, createdAt, updatedAt string) error {
	var err error
	if c.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return fmt.Errorf("cliente %s: created_at: %w", c.NumeroDocumento, err)
	}
	if c.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return fmt.Errorf("cliente %s: updated_at: %w", c.NumeroDocumento, err)
	}
	return nil
}

func collectClientes(rows *sql.Rows) ([]*entity.Cliente, error) {
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
