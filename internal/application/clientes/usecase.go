package clientes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	domclientes "github.com/jhoicas/Clientes-api/internal/domain/clientes"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
	"github.com/jhoicas/Clientes-api/pkg/logger"
)

// Mensajes de fallo interno por operación (nunca incluyen detalles del store).
const (
	opCrear      = "crear"
	opListar     = "listar"
	opObtener    = "obtener"
	opActualizar = "actualizar"
	opEliminar   = "eliminar"
	opBuscar     = "buscar"
)

var mensajesFallo = map[string]string{
	opCrear:      "Error al crear el cliente",
	opListar:     "Error al obtener los clientes",
	opObtener:    "Error al obtener el cliente",
	opActualizar: "Error al actualizar el cliente",
	opEliminar:   "Error al eliminar el cliente",
	opBuscar:     "Error al buscar clientes",
}

// ClienteUseCase reglas de negocio de clientes: unicidad, viabilidad por edad y búsqueda.
// No guarda estado entre llamadas; todo vive en el store.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	tx   TxRunner
	log  *logger.Logger
	now  func() time.Time
}

// NewClienteUseCase construye el caso de uso. repo se usa para lecturas; tx para operaciones que escriben.
func NewClienteUseCase(repo repository.ClienteRepository, tx TxRunner, log *logger.Logger) *ClienteUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClienteUseCase{
		repo: repo,
		tx:   tx,
		log:  log.With("componente", "clientes"),
		now:  time.Now,
	}
}

// Create registra un cliente nuevo y devuelve si es viable.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResultado, error) {
	numeroDocumento := normalizarTexto(in.NumeroDocumento)
	correo := NormalizarCorreo(in.CorreoElectronico)
	hoy := uc.now()

	var cliente *entity.Cliente
	err := uc.tx.RunClientes(ctx, func(repo repository.ClienteRepository) error {
		existe, err := repo.ExistsByID(ctx, numeroDocumento)
		if err != nil {
			return err
		}
		if existe {
			return domain.AlreadyExists(domain.CampoNumeroDocumento, numeroDocumento)
		}
		otro, err := repo.GetByEmail(ctx, correo)
		if err != nil {
			return err
		}
		if otro != nil {
			return domain.AlreadyExists(domain.CampoCorreoElectronico, correo)
		}
		cliente, err = construirCliente(in.ClienteDatos, hoy)
		if err != nil {
			return err
		}
		cliente.NumeroDocumento = numeroDocumento
		return repo.Create(ctx, cliente)
	})
	if err != nil {
		return nil, uc.traducirError(opCrear, err, numeroDocumento, correo)
	}
	return &dto.ClienteResultado{
		NumeroDocumento: cliente.NumeroDocumento,
		Mensaje:         "Cliente creado exitosamente. Es viable: " + siNo(cliente.EsViable),
		EsViable:        cliente.EsViable,
	}, nil
}

// List devuelve todos los clientes con su edad calculada. El orden lo define el store.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, uc.traducirError(opListar, err, "", "")
	}
	return toClienteResponses(list, uc.now()), nil
}

// GetByDocumento obtiene un cliente por número de documento.
func (uc *ClienteUseCase) GetByDocumento(ctx context.Context, numeroDocumento string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, numeroDocumento)
	if err != nil {
		return nil, uc.traducirError(opObtener, err, numeroDocumento, "")
	}
	if cliente == nil {
		return nil, domain.NotFound(numeroDocumento)
	}
	out := toClienteResponse(cliente, uc.now())
	return &out, nil
}

// Update reemplaza todos los campos mutables del cliente y recalcula la viabilidad.
func (uc *ClienteUseCase) Update(ctx context.Context, numeroDocumento string, in dto.UpdateClienteRequest) (*dto.ClienteResultado, error) {
	correo := NormalizarCorreo(in.CorreoElectronico)
	hoy := uc.now()

	var cliente *entity.Cliente
	err := uc.tx.RunClientes(ctx, func(repo repository.ClienteRepository) error {
		actual, err := repo.GetByID(ctx, numeroDocumento)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.NotFound(numeroDocumento)
		}
		otro, err := repo.GetByEmail(ctx, correo)
		if err != nil {
			return err
		}
		if otro != nil && otro.NumeroDocumento != numeroDocumento {
			return domain.AlreadyExists(domain.CampoCorreoElectronico, correo)
		}
		cliente, err = construirCliente(in.ClienteDatos, hoy)
		if err != nil {
			return err
		}
		cliente.NumeroDocumento = actual.NumeroDocumento
		cliente.CreatedAt = actual.CreatedAt
		return repo.Update(ctx, cliente)
	})
	if err != nil {
		return nil, uc.traducirError(opActualizar, err, numeroDocumento, correo)
	}
	return &dto.ClienteResultado{
		NumeroDocumento: cliente.NumeroDocumento,
		Mensaje:         "Cliente actualizado exitosamente. Es viable: " + siNo(cliente.EsViable),
		EsViable:        cliente.EsViable,
	}, nil
}

// Delete elimina definitivamente un cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, numeroDocumento string) error {
	err := uc.tx.RunClientes(ctx, func(repo repository.ClienteRepository) error {
		existe, err := repo.ExistsByID(ctx, numeroDocumento)
		if err != nil {
			return err
		}
		if !existe {
			return domain.NotFound(numeroDocumento)
		}
		return repo.Delete(ctx, numeroDocumento)
	})
	if err != nil {
		return uc.traducirError(opEliminar, err, numeroDocumento, "")
	}
	return nil
}

// Search busca termino como subcadena en nombre o apellidos, sin distinguir mayúsculas.
// Un término vacío no es un caso especial: toda cadena contiene "" y se devuelven todos.
func (uc *ClienteUseCase) Search(ctx context.Context, termino string) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.SearchByNombreOApellidos(ctx, termino)
	if err != nil {
		return nil, uc.traducirError(opBuscar, err, "", "")
	}
	return toClienteResponses(list, uc.now()), nil
}

// construirCliente valida las reglas propias del dominio y normaliza los campos de texto.
func construirCliente(in dto.ClienteDatos, hoy time.Time) (*entity.Cliente, error) {
	edad, err := domclientes.CalcularEdad(in.FechaNacimiento.Time, hoy)
	if err != nil {
		return nil, domain.Validation("fecha_nacimiento", "La fecha de nacimiento no puede ser futura")
	}
	ocupacion, err := entity.ParseOcupacion(in.Ocupacion)
	if err != nil {
		return nil, domain.Validation("ocupacion", "La ocupación debe ser Empleado, Independiente o Pensionado")
	}
	return &entity.Cliente{
		Nombre:            normalizarTexto(in.Nombre),
		Apellidos:         normalizarTexto(in.Apellidos),
		FechaNacimiento:   dto.NewFecha(in.FechaNacimiento.Time).Time,
		Ciudad:            normalizarTexto(in.Ciudad),
		CorreoElectronico: NormalizarCorreo(in.CorreoElectronico),
		Telefono:          normalizarTexto(in.Telefono),
		Ocupacion:         ocupacion,
		EsViable:          domclientes.EsViable(edad),
	}, nil
}

// traducirError lleva cualquier error a uno de los tipos de domain.ClienteError.
// Los fallos internos se registran una vez con una referencia que viaja en la respuesta.
func (uc *ClienteUseCase) traducirError(op string, err error, numeroDocumento, correo string) error {
	var ce *domain.ClienteError
	if errors.As(err, &ce) {
		return ce
	}
	var conflicto *domain.ConstraintError
	if errors.As(err, &conflicto) {
		switch conflicto.Field {
		case domain.CampoNumeroDocumento:
			return domain.AlreadyExists(domain.CampoNumeroDocumento, numeroDocumento)
		case domain.CampoCorreoElectronico:
			return domain.AlreadyExists(domain.CampoCorreoElectronico, correo)
		default:
			return &domain.ClienteError{
				Kind:    domain.KindAlreadyExists,
				Message: "Ya existe un cliente con estos datos",
				Cause:   conflicto,
			}
		}
	}
	// La fila desapareció entre la verificación y la escritura.
	if errors.Is(err, domain.ErrNotFound) && numeroDocumento != "" {
		return domain.NotFound(numeroDocumento)
	}

	ref := uuid.NewString()
	uc.log.Error().
		Err(err).
		Str("operacion", op).
		Str("numero_documento", numeroDocumento).
		Str("error_id", ref).
		Msg("fallo en servicio de clientes")
	return domain.ServiceFailure(mensajesFallo[op], ref, fmt.Errorf("%s cliente: %w", op, err))
}

func toClienteResponses(list []*entity.Cliente, hoy time.Time) []dto.ClienteResponse {
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c, hoy))
	}
	return out
}

func toClienteResponse(c *entity.Cliente, hoy time.Time) dto.ClienteResponse {
	// Los registros guardados nunca tienen fecha futura; ante un reloj desfasado la edad queda en 0.
	edad, _ := domclientes.CalcularEdad(c.FechaNacimiento, hoy)
	return dto.ClienteResponse{
		NumeroDocumento:   c.NumeroDocumento,
		Nombre:            c.Nombre,
		Apellidos:         c.Apellidos,
		FechaNacimiento:   dto.NewFecha(c.FechaNacimiento),
		Ciudad:            c.Ciudad,
		CorreoElectronico: c.CorreoElectronico,
		Telefono:          c.Telefono,
		Ocupacion:         c.Ocupacion.String(),
		EsViable:          c.EsViable,
		Edad:              edad,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
