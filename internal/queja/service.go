// Package queja implements the complaint lifecycle: every mutation of the
// complaint store goes through this service, which applies the server-side
// defaults and triggers the admin notification fan-out.
package queja

import (
	"errors"
	"log"
	"time"

	"critgo/backend/internal/authz"
	"critgo/backend/internal/models"
	"critgo/backend/internal/storage"
)

// ErrPrioridadInvalida rejects a priority override outside {Baja, Media, Alta}.
var ErrPrioridadInvalida = errors.New("prioridad invalida")

// ErrEstatusInvalido rejects a status outside {Pendiente, Atendida, Cerrada}.
var ErrEstatusInvalido = errors.New("estatus invalido")

// Notifier delivers the new-complaint event to the admin sinks. It must
// never return: all delivery failures are terminal inside the notifier.
type Notifier interface {
	NotifyNuevaQueja(evt models.EventoQueja)
}

// Service handles the business logic for quejas.
type Service struct {
	Storage  storage.Storage
	Notifier Notifier
}

// NewService creates a new complaint service.
func NewService(s storage.Storage, n Notifier) *Service {
	return &Service{Storage: s, Notifier: n}
}

// SubmitAuthenticated files a queja on behalf of a signed-in account.
// Estatus is always forced to Pendiente. The caller may override Prioridad
// with a valid value; absent it defaults to Media.
func (s *Service) SubmitAuthenticated(caller authz.Caller, input *models.QuejaInput) (*models.Queja, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}

	prioridad := models.PrioridadMedia
	if input.Prioridad != nil {
		if !input.Prioridad.Valid() {
			return nil, ErrPrioridadInvalida
		}
		prioridad = *input.Prioridad
	}

	clienteID := caller.ID
	q := &models.Queja{
		NombreCliente:    input.NombreCliente,
		NumeroAfiliacion: input.NumeroAfiliacion,
		Correo:           input.Correo,
		Titulo:           input.Titulo,
		Descripcion:      input.Descripcion,
		Categoria:        input.Categoria,
		Estatus:          models.EstatusPendiente,
		Prioridad:        prioridad,
		ClienteID:        &clienteID,
	}

	if err := s.Storage.CreateQueja(q); err != nil {
		return nil, err
	}
	q.ClienteUserName = caller.UserName

	s.dispatchNotification(q, models.TipoQuejaRegistrada, caller.UserName)
	return q, nil
}

// SubmitPublic files an anonymous queja. No identity, no priority override.
func (s *Service) SubmitPublic(input *models.QuejaPublica) (*models.Queja, error) {
	q := &models.Queja{
		NombreCliente:    input.NombreCliente,
		NumeroAfiliacion: input.NumeroAfiliacion,
		Correo:           input.Correo,
		Titulo:           input.Titulo,
		Descripcion:      input.Descripcion,
		Categoria:        input.Categoria,
		Estatus:          models.EstatusPendiente,
		Prioridad:        models.PrioridadMedia,
		ClienteID:        nil,
	}

	if err := s.Storage.CreateQueja(q); err != nil {
		return nil, err
	}

	s.dispatchNotification(q, models.TipoQuejaAnonima, "")
	return q, nil
}

// Get returns a queja the caller is allowed to see. Existence is checked
// before permissions so a nonexistent id never reads as Forbidden.
func (s *Service) Get(caller authz.Caller, id uint) (*models.Queja, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}

	q, err := s.Storage.GetQueja(id)
	if err != nil {
		return nil, err
	}
	if !authz.CanView(caller, q) {
		return nil, authz.ErrForbidden
	}
	return q, nil
}

// ListMine returns the caller's own quejas, newest first.
func (s *Service) ListMine(caller authz.Caller) ([]models.Queja, error) {
	if caller.ID == "" {
		return nil, authz.ErrUnauthenticated
	}
	return s.Storage.ListQuejasByCliente(caller.ID)
}

// ListAll returns every queja, newest first. Admin only.
func (s *Service) ListAll(caller authz.Caller) ([]models.Queja, error) {
	if !authz.CanListAll(caller) {
		return nil, authz.ErrForbidden
	}
	return s.Storage.ListQuejas()
}

// UpdateEstatus sets the status of a queja. Admin only. Any valid status is
// accepted regardless of the current one; the transition graph is permissive.
func (s *Service) UpdateEstatus(caller authz.Caller, id uint, estatus models.EstatusQueja) error {
	if !authz.CanMutateStatus(caller) {
		return authz.ErrForbidden
	}
	if !estatus.Valid() {
		return ErrEstatusInvalido
	}
	return s.Storage.UpdateQuejaEstatus(id, estatus)
}

// Delete removes a queja permanently. Admin only.
func (s *Service) Delete(caller authz.Caller, id uint) error {
	if !authz.CanDelete(caller) {
		return authz.ErrForbidden
	}
	return s.Storage.DeleteQueja(id)
}

// dispatchNotification fires the fan-out after the store write committed.
// It runs detached: the submitter's response never depends on delivery, and
// a panicking sink must not take the request goroutine down.
func (s *Service) dispatchNotification(q *models.Queja, tipo, usuarioRegistrado string) {
	if s.Notifier == nil {
		return
	}

	evt := models.EventoQueja{
		NombreCliente:     q.NombreCliente,
		Correo:            q.Correo,
		Titulo:            q.Titulo,
		Descripcion:       q.Descripcion,
		Categoria:         q.Categoria,
		Tipo:              tipo,
		UsuarioRegistrado: usuarioRegistrado,
		Fecha:             time.Now(),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("ERROR: Notification dispatch panicked for queja %d: %v", q.ID, r)
			}
		}()
		s.Notifier.NotifyNuevaQueja(evt)
	}()
}
