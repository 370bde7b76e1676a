package handler

import (
	"errors"
	"net/http"
	"strconv"

	"critgo/backend/internal/articulo"
	"critgo/backend/internal/auth"
	"critgo/backend/internal/authz"
	"critgo/backend/internal/hub"
	"critgo/backend/internal/queja"
	"critgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler wires the services into gin routes.
type Handler struct {
	Quejas    *queja.Service
	Articulos *articulo.Service
	Storage   storage.Storage
	Tokens    *auth.TokenService
	Hub       *hub.Manager
}

func NewHandler(q *queja.Service, a *articulo.Service, s storage.Storage, t *auth.TokenService, h *hub.Manager) *Handler {
	return &Handler{
		Quejas:    q,
		Articulos: a,
		Storage:   s,
		Tokens:    t,
		Hub:       h,
	}
}

// idParam parses the numeric {id} route parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}

// mustCaller fetches the caller set by the Authenticate middleware.
func mustCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
		return authz.Caller{}, false
	}
	return caller, true
}

// writeServiceError maps the error taxonomy to HTTP statuses. Anything
// unknown becomes a generic 500 with no internals leaked.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "no tienes permisos para este recurso"})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "registro no encontrado"})
	case errors.Is(err, storage.ErrCodigoDuplicado):
		c.JSON(http.StatusConflict, gin.H{"error": "ya existe un artículo con ese código"})
	case errors.Is(err, queja.ErrPrioridadInvalida),
		errors.Is(err, queja.ErrEstatusInvalido),
		errors.Is(err, articulo.ErrNivelInvalido),
		errors.Is(err, articulo.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
	}
}
