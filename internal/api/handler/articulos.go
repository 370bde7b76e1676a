package handler

import (
	"fmt"
	"net/http"

	"critgo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetArticulos returns every articulo, newest first.
func (h *Handler) GetArticulos(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	articulos, err := h.Articulos.List(caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articulos)
}

// GetArticulo returns one articulo by id.
func (h *Handler) GetArticulo(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	a, err := h.Articulos.Get(caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// PostArticulo registers a new articulo for the authenticated caller.
func (h *Handler) PostArticulo(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var input models.Articulo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.Articulos.Create(caller, &input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/articulos/%d", a.ID))
	c.JSON(http.StatusCreated, a)
}

// PutArticulo updates an articulo. The payload id must match the route id.
func (h *Handler) PutArticulo(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input models.Articulo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Articulos.Update(caller, id, &input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteArticulo removes an articulo. Admin only (route guard).
func (h *Handler) DeleteArticulo(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Articulos.Delete(caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
