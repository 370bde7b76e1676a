// Package articulo implements inventory item management. The uniqueness of
// the item code is the one rule the store alone cannot express in full: it
// must also hold on update, excluding the record being updated.
package articulo

import (
	"errors"

	"critgo/backend/internal/authz"
	"critgo/backend/internal/models"
	"critgo/backend/internal/storage"
)

// ErrNivelInvalido rejects a level outside {Bajo, Medio, Alto, Critico}.
var ErrNivelInvalido = errors.New("nivel de priorizacion invalido")

// ErrIDMismatch rejects an update whose body id differs from the route id.
var ErrIDMismatch = errors.New("el id no coincide")

// Service handles the business logic for articulos.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Create registers a new articulo, stamping the registering account.
// A duplicate codigo surfaces as storage.ErrCodigoDuplicado.
func (s *Service) Create(caller authz.Caller, a *models.Articulo) (*models.Articulo, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}
	if !a.NivelPriorizacion.Valid() {
		return nil, ErrNivelInvalido
	}

	registroID := caller.ID
	a.UsuarioQueRegistroID = &registroID

	if err := s.Storage.CreateArticulo(a); err != nil {
		return nil, err
	}
	a.UsuarioQueRegistroUserName = caller.UserName
	return a, nil
}

func (s *Service) Get(caller authz.Caller, id uint) (*models.Articulo, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}
	return s.Storage.GetArticulo(id)
}

func (s *Service) List(caller authz.Caller) ([]models.Articulo, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}
	return s.Storage.ListArticulos()
}

// Update rewrites an articulo. The id in the payload must match the one in
// the route, and the codigo must stay unique among the other items.
func (s *Service) Update(caller authz.Caller, id uint, a *models.Articulo) error {
	if caller.ID == "" {
		return authz.ErrUnauthenticated
	}
	if a.ID != id {
		return ErrIDMismatch
	}
	if !a.NivelPriorizacion.Valid() {
		return ErrNivelInvalido
	}
	return s.Storage.UpdateArticulo(a)
}

// Delete removes an articulo. Admin only.
func (s *Service) Delete(caller authz.Caller, id uint) error {
	if !authz.CanDeleteArticulo(caller) {
		return authz.ErrForbidden
	}
	return s.Storage.DeleteArticulo(id)
}
