package storage

import (
	"errors"
	"log"
	"time"

	"critgo/backend/internal/models"

	"gorm.io/gorm"
)

// CreateArticulo persists a new articulo. The unique index on codigo is the
// authority under concurrent creates; the insert error is mapped to
// ErrCodigoDuplicado.
func (s *Service) CreateArticulo(a *models.Articulo) error {
	a.ID = 0
	a.FechaRegistro = time.Now()

	if err := s.DB.Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCodigoDuplicado
		}
		log.Printf("ERROR: Failed to save articulo %q: %v", a.Codigo, err)
		return err
	}
	return nil
}

func (s *Service) GetArticulo(id uint) (*models.Articulo, error) {
	var a models.Articulo
	err := s.DB.Preload("UsuarioQueRegistro").First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get articulo %d: %v", id, err)
		return nil, err
	}
	resolveRegistroUserName(&a)
	return &a, nil
}

// ListArticulos returns every articulo, newest first.
func (s *Service) ListArticulos() ([]models.Articulo, error) {
	var articulos []models.Articulo
	err := s.DB.Preload("UsuarioQueRegistro").
		Order("fecha_registro desc").
		Find(&articulos).Error
	if err != nil {
		log.Printf("ERROR: Failed to list articulos: %v", err)
		return nil, err
	}
	for i := range articulos {
		resolveRegistroUserName(&articulos[i])
	}
	return articulos, nil
}

// UpdateArticulo rewrites the mutable fields of an existing articulo.
// Codigo uniqueness is re-checked excluding the record's own id.
func (s *Service) UpdateArticulo(a *models.Articulo) error {
	var existing models.Articulo
	err := s.DB.First(&existing, a.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var count int64
	err = s.DB.Model(&models.Articulo{}).
		Where("codigo = ? AND id <> ?", a.Codigo, a.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCodigoDuplicado
	}

	existing.Codigo = a.Codigo
	existing.Nombre = a.Nombre
	existing.Descripcion = a.Descripcion
	existing.Ubicacion = a.Ubicacion
	existing.Uso = a.Uso
	existing.NivelPriorizacion = a.NivelPriorizacion

	if err := s.DB.Save(&existing).Error; err != nil {
		// The pre-check races with concurrent writers; the unique index
		// still decides.
		if isUniqueViolation(err) {
			return ErrCodigoDuplicado
		}
		log.Printf("ERROR: Failed to update articulo %d: %v", a.ID, err)
		return err
	}
	return nil
}

func (s *Service) DeleteArticulo(id uint) error {
	result := s.DB.Delete(&models.Articulo{}, id)
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete articulo %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func resolveRegistroUserName(a *models.Articulo) {
	if a.UsuarioQueRegistro != nil {
		a.UsuarioQueRegistroUserName = a.UsuarioQueRegistro.UserName
	}
}
