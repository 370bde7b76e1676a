// Package authz holds the pure authorization decisions for quejas and
// articulos. Keeping them here, instead of inline role checks in every
// handler, makes the rules testable without the web framework.
package authz

import (
	"errors"

	"critgo/backend/internal/models"
)

var (
	// ErrUnauthenticated means no caller identity could be resolved.
	ErrUnauthenticated = errors.New("no autenticado")
	// ErrForbidden means the caller exists but lacks rights over the resource.
	ErrForbidden = errors.New("acceso denegado")
)

// Caller is the resolved identity of a request.
type Caller struct {
	ID       string
	UserName string
	Rol      string
}

// IsAdmin reports whether the caller carries the admin role.
func (c Caller) IsAdmin() bool {
	return c.Rol == models.RolAdministrador
}

// CanView allows admins, and the authenticated owner of the queja.
func CanView(caller Caller, q *models.Queja) bool {
	if caller.IsAdmin() {
		return true
	}
	return q.ClienteID != nil && *q.ClienteID == caller.ID
}

// CanListAll allows only admins to read the full complaint list.
func CanListAll(caller Caller) bool {
	return caller.IsAdmin()
}

// CanMutateStatus allows only admins to change a queja's status.
func CanMutateStatus(caller Caller) bool {
	return caller.IsAdmin()
}

// CanDelete allows only admins to delete quejas.
func CanDelete(caller Caller) bool {
	return caller.IsAdmin()
}

// CanDeleteArticulo allows only admins to delete articulos.
func CanDeleteArticulo(caller Caller) bool {
	return caller.IsAdmin()
}

// CanSubmitPublic is always true: the public complaint path needs no identity.
func CanSubmitPublic() bool {
	return true
}
