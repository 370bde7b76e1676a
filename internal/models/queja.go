package models

import "time"

// EstatusQueja is the lifecycle state of a queja. Transitions are
// deliberately unrestricted: an administrator may set any valid value.
type EstatusQueja int

const (
	EstatusPendiente EstatusQueja = iota
	EstatusAtendida
	EstatusCerrada
)

// Valid reports whether the value is one of the known statuses.
func (e EstatusQueja) Valid() bool {
	return e >= EstatusPendiente && e <= EstatusCerrada
}

func (e EstatusQueja) String() string {
	switch e {
	case EstatusPendiente:
		return "Pendiente"
	case EstatusAtendida:
		return "Atendida"
	case EstatusCerrada:
		return "Cerrada"
	}
	return "Desconocido"
}

// PrioridadQueja is the triage priority of a queja.
type PrioridadQueja int

const (
	PrioridadBaja PrioridadQueja = iota
	PrioridadMedia
	PrioridadAlta
)

// Valid reports whether the value is one of the known priorities.
func (p PrioridadQueja) Valid() bool {
	return p >= PrioridadBaja && p <= PrioridadAlta
}

func (p PrioridadQueja) String() string {
	switch p {
	case PrioridadBaja:
		return "Baja"
	case PrioridadMedia:
		return "Media"
	case PrioridadAlta:
		return "Alta"
	}
	return "Desconocida"
}

// Queja is a complaint record. Fecha, Estatus and Prioridad are set by the
// server on creation; client-supplied values for them are ignored.
type Queja struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	NombreCliente    string         `gorm:"size:100;not null" json:"nombreCliente"`
	NumeroAfiliacion string         `gorm:"size:50" json:"numeroAfiliacion"`
	Correo           string         `gorm:"size:256;not null" json:"correo"`
	Titulo           string         `gorm:"size:200;not null" json:"titulo"`
	Descripcion      string         `gorm:"size:1000;not null" json:"descripcion"`
	Categoria        string         `gorm:"size:100;not null" json:"categoria"`
	Fecha            time.Time      `json:"fecha"`
	Estatus          EstatusQueja   `json:"estatus"`
	Prioridad        PrioridadQueja `json:"prioridad"`

	// ClienteID is nil for public (anonymous) submissions. The RESTRICT
	// constraint keeps accounts with quejas from being deleted.
	ClienteID *string  `gorm:"index" json:"clienteId"`
	Cliente   *Usuario `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT" json:"-"`

	// ClienteUserName is resolved from the owner at read time, never stored.
	ClienteUserName string `gorm:"-" json:"clienteUserName,omitempty"`
}

// QuejaInput is the payload for authenticated complaint submission.
// Prioridad is a pointer so "absent" can be told apart from Baja (zero).
type QuejaInput struct {
	NombreCliente    string          `json:"nombreCliente" binding:"required,max=100"`
	NumeroAfiliacion string          `json:"numeroAfiliacion" binding:"max=50"`
	Correo           string          `json:"correo" binding:"required,email,max=256"`
	Titulo           string          `json:"titulo" binding:"required,max=200"`
	Descripcion      string          `json:"descripcion" binding:"required,min=10,max=1000"`
	Categoria        string          `json:"categoria" binding:"required,max=100"`
	Prioridad        *PrioridadQueja `json:"prioridad"`
}

// QuejaPublica is the payload for the anonymous submission endpoint.
// No priority override is accepted on this path.
type QuejaPublica struct {
	NombreCliente    string `json:"nombreCliente" binding:"required,max=100"`
	Correo           string `json:"correo" binding:"required,email,max=256"`
	NumeroAfiliacion string `json:"numeroAfiliacion" binding:"max=50"`
	Categoria        string `json:"categoria" binding:"required,max=100"`
	Titulo           string `json:"titulo" binding:"required,max=200"`
	Descripcion      string `json:"descripcion" binding:"required,min=10,max=1000"`
}
