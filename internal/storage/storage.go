package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"critgo/backend/internal/models"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to the service layer. Handlers map them to
// HTTP status codes.
var (
	ErrNotFound         = errors.New("registro no encontrado")
	ErrCodigoDuplicado  = errors.New("codigo de articulo duplicado")
	ErrUsuarioDuplicado = errors.New("usuario o correo ya registrado")
)

type Storage interface {
	// Quejas
	CreateQueja(q *models.Queja) error
	GetQueja(id uint) (*models.Queja, error)
	ListQuejas() ([]models.Queja, error)
	ListQuejasByCliente(clienteID string) ([]models.Queja, error)
	UpdateQuejaEstatus(id uint, estatus models.EstatusQueja) error
	DeleteQueja(id uint) error

	// Articulos
	CreateArticulo(a *models.Articulo) error
	GetArticulo(id uint) (*models.Articulo, error)
	ListArticulos() ([]models.Articulo, error)
	UpdateArticulo(a *models.Articulo) error
	DeleteArticulo(id uint) error

	// Usuarios
	CreateUsuario(u *models.Usuario) error
	GetUsuarioByID(id string) (*models.Usuario, error)
	GetUsuarioByUserName(userName string) (*models.Usuario, error)
	HasAdministrador() (bool, error)

	// Tokens
	RevokeToken(jti string, ttl time.Duration) error
	IsTokenRevoked(jti string) (bool, error)

	// Realtime
	PublishEventoQueja(evt models.EventoQueja) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewService Constructor
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). GORM's TranslateError covers the pgx path;
// the pq check covers connections opened over lib/pq.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// --- Usuarios ---

func (s *Service) CreateUsuario(u *models.Usuario) error {
	if err := s.DB.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUsuarioDuplicado
		}
		log.Printf("ERROR: Failed to create usuario %s: %v", u.UserName, err)
		return err
	}
	return nil
}

func (s *Service) GetUsuarioByID(id string) (*models.Usuario, error) {
	var u models.Usuario
	err := s.DB.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetUsuarioByUserName(userName string) (*models.Usuario, error) {
	var u models.Usuario
	err := s.DB.Where("user_name = ?", userName).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// HasAdministrador reports whether at least one admin account exists.
// Used at boot to decide whether the seed admin must be created.
func (s *Service) HasAdministrador() (bool, error) {
	var count int64
	err := s.DB.Model(&models.Usuario{}).
		Where("rol = ?", models.RolAdministrador).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// --- Tokens ---

// RevokeToken marks a JWT id as revoked in Redis until its natural expiry.
func (s *Service) RevokeToken(jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return s.Redis.Set(s.Ctx, "revoked:"+jti, "1", ttl).Err()
}

// IsTokenRevoked checks the revocation mark in Redis.
func (s *Service) IsTokenRevoked(jti string) (bool, error) {
	_, err := s.Redis.Get(s.Ctx, "revoked:"+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --- Realtime ---

// quejasChannel is the Redis Pub/Sub channel every hub instance listens on.
const quejasChannel = "quejas:new"

// PublishEventoQueja publishes a new-complaint event so that every running
// instance can push it to its connected admin sessions.
func (s *Service) PublishEventoQueja(evt models.EventoQueja) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, quejasChannel, payload).Err()
}

// SubscribeQuejas subscribes to the new-complaint channel.
func (s *Service) SubscribeQuejas() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, quejasChannel)
}
