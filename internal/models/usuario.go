package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles conocidos por el sistema.
const (
	RolAdministrador = "administrador"
	RolCliente       = "cliente"
)

// Usuario represents an account in the system. Quejas and articulos keep a
// reference to the usuario that created them.
type Usuario struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserName     string    `gorm:"size:100;uniqueIndex;not null" json:"userName"`
	Correo       string    `gorm:"size:256;uniqueIndex;not null" json:"correo"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Rol          string    `gorm:"size:50;not null;default:cliente" json:"rol"`
	CreadoEn     time.Time `json:"creadoEn"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is unset.
func (u *Usuario) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreadoEn.IsZero() {
		u.CreadoEn = time.Now()
	}
	return
}

// EsAdministrador reports whether the account carries the admin role.
func (u *Usuario) EsAdministrador() bool {
	return u.Rol == RolAdministrador
}
