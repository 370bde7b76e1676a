package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"critgo/backend/internal/api/handler"
	"critgo/backend/internal/articulo"
	"critgo/backend/internal/auth"
	"critgo/backend/internal/models"
	"critgo/backend/internal/queja"
	"critgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStorage implements the endpoints' slice of storage.Storage; the
// embedded interface covers the methods these tests never reach.
type MockStorage struct {
	storage.Storage
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
	return args.Get(0).([]models.Queja), args.Error(1)
}

func (m *MockStorage) ListQuejasByCliente(clienteID string) ([]models.Queja, error) {
	args := m.Called(clienteID)
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

func (m *MockStorage) IsTokenRevoked(jti string) (bool, error) {
	return false, nil
}

type fixture struct {
	router  *gin.Engine
	storage *MockStorage
	tokens  *auth.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storageMock := new(MockStorage)
	tokens := auth.NewTokenService("test-secret")

	h := handler.NewHandler(
		queja.NewService(storageMock, nil),
		articulo.NewService(storageMock),
		storageMock,
		tokens,
		nil,
	)

	r := gin.New()
	h.RegisterRoutes(r, auth.NewMiddleware(tokens, storageMock))

	return &fixture{router: r, storage: storageMock, tokens: tokens}
}

func (f *fixture) tokenFor(t *testing.T, id, userName, rol string) string {
	t.Helper()
	token, err := f.tokens.Issue(&models.Usuario{ID: id, UserName: userName, Rol: rol})
	require.NoError(t, err)
	return token
}

func (f *fixture) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPostQuejaPublica_Success(t *testing.T) {
	f := newFixture(t)

	var saved *models.Queja
	f.storage.On("CreateQueja", mock.AnythingOfType("*models.Queja")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*models.Queja)
			saved.ID = 1
		}).
		Return(nil)

	w := f.request(t, http.MethodPost, "/api/quejas/publica", "", gin.H{
		"nombreCliente": "Ana",
		"correo":        "ana@x.com",
		"categoria":     "Billing",
		"titulo":        "Late refund",
		"descripcion":   "My refund has not arrived after 30 days",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Queja enviada exitosamente")

	require.NotNil(t, saved)
	assert.Equal(t, models.EstatusPendiente, saved.Estatus)
	assert.Equal(t, models.PrioridadMedia, saved.Prioridad)
	assert.Nil(t, saved.ClienteID)
}

func TestPostQuejaPublica_ValidationError(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPost, "/api/quejas/publica", "", gin.H{
		"nombreCliente": "Ana",
		"correo":        "not-an-email",
		"categoria":     "Billing",
		"titulo":        "Late refund",
		"descripcion":   "too short", // under the 10-char minimum
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.storage.AssertNotCalled(t, "CreateQueja", mock.Anything)
}

func TestPostQueja_CreatedWithLocation(t *testing.T) {
	f := newFixture(t)

	f.storage.On("CreateQueja", mock.AnythingOfType("*models.Queja")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Queja).ID = 42
		}).
		Return(nil)

	token := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w := f.request(t, http.MethodPost, "/api/quejas", token, gin.H{
		"nombreCliente": "Ana",
		"correo":        "ana@x.com",
		"categoria":     "Billing",
		"titulo":        "Late refund",
		"descripcion":   "My refund has not arrived after 30 days",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/quejas/42", w.Header().Get("Location"))

	var created models.Queja
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(42), created.ID)
	assert.Equal(t, models.EstatusPendiente, created.Estatus)
}

func TestPostQueja_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPost, "/api/quejas", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetQueja_ForbiddenForNonOwner(t *testing.T) {
	f := newFixture(t)

	owner := "user-2"
	f.storage.On("GetQueja", uint(7)).Return(&models.Queja{ID: 7, ClienteID: &owner}, nil)

	token := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w := f.request(t, http.MethodGet, "/api/quejas/7", token, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetQueja_NotFoundForAnyCaller(t *testing.T) {
	f := newFixture(t)

	f.storage.On("GetQueja", uint(99)).Return(nil, storage.ErrNotFound)

	token := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w := f.request(t, http.MethodGet, "/api/quejas/99", token, nil)

	// Absence is reported as 404 even to non-admins, never disguised as 403.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQuejas_AdminOnly(t *testing.T) {
	f := newFixture(t)

	f.storage.On("ListQuejas").Return([]models.Queja{{ID: 2}, {ID: 1}}, nil)

	adminToken := f.tokenFor(t, "admin-1", "admin", models.RolAdministrador)
	w := f.request(t, http.MethodGet, "/api/quejas", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	clienteToken := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w = f.request(t, http.MethodGet, "/api/quejas", clienteToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPutQuejaStatus_AdminClosesPending(t *testing.T) {
	f := newFixture(t)

	f.storage.On("UpdateQuejaEstatus", uint(5), models.EstatusCerrada).Return(nil)

	adminToken := f.tokenFor(t, "admin-1", "admin", models.RolAdministrador)
	w := f.request(t, http.MethodPut, "/api/quejas/5/status", adminToken, models.EstatusCerrada)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPutQuejaStatus_NotFound(t *testing.T) {
	f := newFixture(t)

	f.storage.On("UpdateQuejaEstatus", uint(99), models.EstatusCerrada).Return(storage.ErrNotFound)

	adminToken := f.tokenFor(t, "admin-1", "admin", models.RolAdministrador)
	w := f.request(t, http.MethodPut, "/api/quejas/99/status", adminToken, models.EstatusCerrada)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutQuejaStatus_ForbiddenForNonAdmin(t *testing.T) {
	f := newFixture(t)

	token := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w := f.request(t, http.MethodPut, "/api/quejas/5/status", token, models.EstatusCerrada)
	assert.Equal(t, http.StatusForbidden, w.Code)
	f.storage.AssertNotCalled(t, "UpdateQuejaEstatus", mock.Anything, mock.Anything)
}

func TestDeleteQueja(t *testing.T) {
	f := newFixture(t)

	f.storage.On("DeleteQueja", uint(5)).Return(nil)
	f.storage.On("DeleteQueja", uint(99)).Return(storage.ErrNotFound)

	adminToken := f.tokenFor(t, "admin-1", "admin", models.RolAdministrador)

	w := f.request(t, http.MethodDelete, "/api/quejas/5", adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.request(t, http.MethodDelete, "/api/quejas/99", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostArticulo_DuplicateCodigo(t *testing.T) {
	f := newFixture(t)

	f.storage.On("CreateArticulo", mock.AnythingOfType("*models.Articulo")).
		Return(storage.ErrCodigoDuplicado)

	token := f.tokenFor(t, "user-1", "ana", models.RolCliente)
	w := f.request(t, http.MethodPost, "/api/articulos", token, gin.H{
		"codigo":      "EXT-001",
		"nombre":      "Extintor",
		"descripcion": "Extintor de polvo",
		"ubicacion":   "Pasillo principal",
		"uso":         "Emergencias",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInvalidToken(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/quejas/mis", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
