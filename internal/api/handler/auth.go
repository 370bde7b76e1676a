package handler

import (
	"errors"
	"net/http"
	"time"

	"critgo/backend/internal/auth"
	"critgo/backend/internal/models"
	"critgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	UserName string `json:"userName" binding:"required,max=100"`
	Correo   string `json:"correo" binding:"required,email,max=256"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new cliente account and returns a fresh token.
// The admin role is never self-assignable through this endpoint.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	usuario := &models.Usuario{
		UserName:     req.UserName,
		Correo:       req.Correo,
		PasswordHash: string(hash),
		Rol:          models.RolCliente,
	}

	if err := h.Storage.CreateUsuario(usuario); err != nil {
		if errors.Is(err, storage.ErrUsuarioDuplicado) {
			c.JSON(http.StatusConflict, gin.H{"error": "usuario o correo ya registrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	token, err := h.Tokens.Issue(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "usuario": usuario})
}

// Login checks credentials and returns a token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario, err := h.Storage.GetUsuarioByUserName(req.UserName)
	if err != nil {
		// Same answer for unknown user and bad password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
		return
	}

	token, err := h.Tokens.Issue(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "usuario": usuario})
}

// Logout revokes the presented token for its remaining lifetime.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok || claims.JTI == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
		return
	}

	if err := h.Storage.RevokeToken(claims.JTI, time.Until(claims.Expiry)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sesión cerrada"})
}
