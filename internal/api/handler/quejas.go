package handler

import (
	"fmt"
	"net/http"

	"critgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PostQuejaPublica handles the anonymous submission path. Unlike the rest
// of the API it answers 200 with a plain message; validation failures are
// structured 400s rather than the silent success of earlier revisions.
func (h *Handler) PostQuejaPublica(c *gin.Context) {
	var input models.QuejaPublica
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Quejas.SubmitPublic(&input); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Queja enviada exitosamente"})
}

// PostQueja files a queja for the authenticated caller.
func (h *Handler) PostQueja(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var input models.QuejaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.Quejas.SubmitAuthenticated(caller, &input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/quejas/%d", q.ID))
	c.JSON(http.StatusCreated, q)
}

// GetQuejas returns every queja, newest first. Admin only (route guard).
func (h *Handler) GetQuejas(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	quejas, err := h.Quejas.ListAll(caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quejas)
}

// GetMisQuejas returns the caller's own quejas, newest first.
func (h *Handler) GetMisQuejas(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	quejas, err := h.Quejas.ListMine(caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quejas)
}

// GetQueja returns one queja when the caller is its owner or an admin.
func (h *Handler) GetQueja(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	q, err := h.Quejas.Get(caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// PutQuejaStatus sets the status of a queja. Admin only (route guard).
// The body is the bare status enum value.
func (h *Handler) PutQuejaStatus(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var estatus models.EstatusQueja
	if err := c.ShouldBindJSON(&estatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estatus inválido"})
		return
	}

	if err := h.Quejas.UpdateEstatus(caller, id, estatus); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteQueja removes a queja. Admin only (route guard).
func (h *Handler) DeleteQueja(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Quejas.Delete(caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
