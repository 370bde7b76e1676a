package models

import "time"

// NivelPriorizacion is the priority level assigned to an inventory item.
type NivelPriorizacion int

const (
	NivelBajo NivelPriorizacion = iota
	NivelMedio
	NivelAlto
	NivelCritico
)

// Valid reports whether the value is one of the known levels.
func (n NivelPriorizacion) Valid() bool {
	return n >= NivelBajo && n <= NivelCritico
}

func (n NivelPriorizacion) String() string {
	switch n {
	case NivelBajo:
		return "Bajo"
	case NivelMedio:
		return "Medio"
	case NivelAlto:
		return "Alto"
	case NivelCritico:
		return "Critico"
	}
	return "Desconocido"
}

// Articulo is a tracked inventory item. Codigo is unique across all items;
// the unique index backs the conflict check under concurrent creates.
type Articulo struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Codigo            string            `gorm:"size:50;uniqueIndex;not null" json:"codigo" binding:"required,max=50"`
	Nombre            string            `gorm:"size:100;not null" json:"nombre" binding:"required,max=100"`
	Descripcion       string            `gorm:"size:500;not null" json:"descripcion" binding:"required,max=500"`
	Ubicacion         string            `gorm:"size:200;not null" json:"ubicacion" binding:"required,max=200"`
	Uso               string            `gorm:"size:300;not null" json:"uso" binding:"required,max=300"`
	NivelPriorizacion NivelPriorizacion `json:"nivelPriorizacion"`
	FechaRegistro     time.Time         `json:"fechaRegistro"`

	UsuarioQueRegistroID *string  `gorm:"index" json:"usuarioQueRegistroId"`
	UsuarioQueRegistro   *Usuario `gorm:"foreignKey:UsuarioQueRegistroID" json:"-"`

	// Resolved at read time from the registering account.
	UsuarioQueRegistroUserName string `gorm:"-" json:"usuarioQueRegistroUserName,omitempty"`
}
