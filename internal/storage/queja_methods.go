package storage

import (
	"errors"
	"log"
	"time"

	"critgo/backend/internal/models"

	"gorm.io/gorm"
)

// CreateQueja persists a new queja. Fecha is stamped server-side; the caller
// is expected to have forced Estatus/Prioridad already.
func (s *Service) CreateQueja(q *models.Queja) error {
	q.ID = 0
	q.Fecha = time.Now()

	if err := s.DB.Create(q).Error; err != nil {
		log.Printf("ERROR: Failed to save queja %q: %v", q.Titulo, err)
		return err
	}
	return nil
}

// GetQueja loads a queja with its owner resolved for the display name.
func (s *Service) GetQueja(id uint) (*models.Queja, error) {
	var q models.Queja
	err := s.DB.Preload("Cliente").First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get queja %d: %v", id, err)
		return nil, err
	}
	resolveClienteUserName(&q)
	return &q, nil
}

// ListQuejas returns every queja, newest first.
func (s *Service) ListQuejas() ([]models.Queja, error) {
	var quejas []models.Queja
	err := s.DB.Preload("Cliente").Order("fecha desc").Find(&quejas).Error
	if err != nil {
		log.Printf("ERROR: Failed to list quejas: %v", err)
		return nil, err
	}
	for i := range quejas {
		resolveClienteUserName(&quejas[i])
	}
	return quejas, nil
}

// ListQuejasByCliente returns the quejas owned by one account, newest first.
func (s *Service) ListQuejasByCliente(clienteID string) ([]models.Queja, error) {
	var quejas []models.Queja
	err := s.DB.Preload("Cliente").
		Where("cliente_id = ?", clienteID).
		Order("fecha desc").
		Find(&quejas).Error
	if err != nil {
		log.Printf("ERROR: Failed to list quejas for cliente %s: %v", clienteID, err)
		return nil, err
	}
	for i := range quejas {
		resolveClienteUserName(&quejas[i])
	}
	return quejas, nil
}

// UpdateQuejaEstatus sets the status of an existing queja. Any valid status
// value is accepted; redundant updates are not an error.
func (s *Service) UpdateQuejaEstatus(id uint, estatus models.EstatusQueja) error {
	result := s.DB.Model(&models.Queja{}).
		Where("id = ?", id).
		Update("estatus", estatus)
	if result.Error != nil {
		log.Printf("ERROR: Failed to update estatus of queja %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteQueja removes a queja permanently.
func (s *Service) DeleteQueja(id uint) error {
	result := s.DB.Delete(&models.Queja{}, id)
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete queja %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveClienteUserName copies the owner's username onto the transient
// display field. The name is never stored on the queja row itself.
func resolveClienteUserName(q *models.Queja) {
	if q.Cliente != nil {
		q.ClienteUserName = q.Cliente.UserName
	}
}
