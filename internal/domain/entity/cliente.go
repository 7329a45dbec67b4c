package entity

import "time"

// Cliente representa un cliente registrado. NumeroDocumento es la identidad y no cambia.
// EsViable se deriva de FechaNacimiento en cada alta o actualización.
type Cliente struct {
	NumeroDocumento   string
	Nombre            string
	Apellidos         string
	FechaNacimiento   time.Time
	Ciudad            string
	CorreoElectronico string
	Telefono          string
	Ocupacion         Ocupacion
	EsViable          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
