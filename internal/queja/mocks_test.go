package queja_test

import (
	"time"

	"critgo/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateQueja(q *models.Queja) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *MockStorage) GetQueja(id uint) (*models.Queja, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Queja), args.Error(1)
}

func (m *MockStorage) ListQuejas() ([]models.Queja, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Queja), args.Error(1)
}

func (m *MockStorage) ListQuejasByCliente(clienteID string) ([]models.Queja, error) {
	args := m.Called(clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Queja), args.Error(1)
}

func (m *MockStorage) UpdateQuejaEstatus(id uint, estatus models.EstatusQueja) error {
	args := m.Called(id, estatus)
	return args.Error(0)
}

func (m *MockStorage) DeleteQueja(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateArticulo(a *models.Articulo) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) GetArticulo(id uint) (*models.Articulo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Articulo), args.Error(1)
}

func (m *MockStorage) ListArticulos() ([]models.Articulo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Articulo), args.Error(1)
}

func (m *MockStorage) UpdateArticulo(a *models.Articulo) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStorage) DeleteArticulo(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateUsuario(u *models.Usuario) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockStorage) GetUsuarioByID(id string) (*models.Usuario, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockStorage) GetUsuarioByUserName(userName string) (*models.Usuario, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockStorage) HasAdministrador() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) RevokeToken(jti string, ttl time.Duration) error {
	args := m.Called(jti, ttl)
	return args.Error(0)
}

func (m *MockStorage) IsTokenRevoked(jti string) (bool, error) {
	args := m.Called(jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) PublishEventoQueja(evt models.EventoQueja) error {
	args := m.Called(evt)
	return args.Error(0)
}

// MockNotifier records the events it receives and signals each delivery so
// tests can wait for the detached dispatch goroutine.
type MockNotifier struct {
	Events chan models.EventoQueja
	Panics bool
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{Events: make(chan models.EventoQueja, 8)}
}

func (n *MockNotifier) NotifyNuevaQueja(evt models.EventoQueja) {
	n.Events <- evt
	if n.Panics {
		panic("sink exploded")
	}
}

// waitForEvent blocks until the notifier receives an event or the deadline hits.
func waitForEvent(n *MockNotifier) (models.EventoQueja, bool) {
	select {
	case evt := <-n.Events:
		return evt, true
	case <-time.After(time.Second):
		return models.EventoQueja{}, false
	}
}
