package dto

import "time"

// ClienteDatos campos mutables de un cliente, comunes a alta y actualización.
type ClienteDatos struct {
	Nombre            string `json:"nombre" validate:"required,notblank,max=100,nombre_persona"`
	Apellidos         string `json:"apellidos" validate:"required,notblank,max=150,nombre_persona"`
	FechaNacimiento   Fecha  `json:"fecha_nacimiento" validate:"required,fecha_pasada"`
	Ciudad            string `json:"ciudad" validate:"required,notblank,max=100"`
	CorreoElectronico string `json:"correo_electronico" validate:"required,notblank,max=255,email_recortado"`
	Telefono          string `json:"telefono" validate:"required,notblank,max=20,telefono"`
	Ocupacion         string `json:"ocupacion" validate:"required,ocupacion"`
}

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	NumeroDocumento string `json:"numero_documento" validate:"required,notblank,max=20"`
	ClienteDatos
}

// UpdateClienteRequest body para PUT /api/clientes/:numeroDocumento. Reemplaza todos los campos mutables.
type UpdateClienteRequest struct {
	ClienteDatos
}

// ClienteResponse cliente en respuestas; Edad se calcula en cada lectura.
type ClienteResponse struct {
	NumeroDocumento   string    `json:"numero_documento"`
	Nombre            string    `json:"nombre"`
	Apellidos         string    `json:"apellidos"`
	FechaNacimiento   Fecha     `json:"fecha_nacimiento"`
	Ciudad            string    `json:"ciudad"`
	CorreoElectronico string    `json:"correo_electronico"`
	Telefono          string    `json:"telefono"`
	Ocupacion         string    `json:"ocupacion"`
	EsViable          bool      `json:"es_viable"`
	Edad              int       `json:"edad"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClienteResultado resultado de alta o actualización.
type ClienteResultado struct {
	NumeroDocumento string `json:"numero_documento"`
	Mensaje         string `json:"message"`
	EsViable        bool   `json:"es_viable"`
}

// ClienteEnvelope respuesta con un único dato.
type ClienteEnvelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Data     any    `json:"data"`
	EsViable *bool  `json:"es_viable,omitempty"`
}

// ClienteListEnvelope respuesta de listados y búsquedas.
type ClienteListEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []ClienteResponse `json:"data"`
	Total   int               `json:"total"`
	Termino *string           `json:"termino,omitempty"`
}
