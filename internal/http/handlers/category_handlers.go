package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// CategoryHandlers handles category HTTP requests
type CategoryHandlers struct {
	categorySvc domain.CategoryService
}

// NewCategoryHandlers creates new category handlers
func NewCategoryHandlers(categorySvc domain.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categorySvc: categorySvc}
}

// CategoryRequest is the create/update payload
type CategoryRequest struct {
	ID     uint   `json:"id"`
	Name   string `json:"name" binding:"required"`
	Active bool   `json:"active"`
}

// CategoryResponse is the full entity representation
type CategoryResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

const duplicateCategoryName = "Ya existe otra categoría con ese nombre."

// List handles GET /api/categories
func (h *CategoryHandlers) List(c *gin.Context) {
	categories, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las categorías."})
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// Get handles GET /api/categories/:id
func (h *CategoryHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categorySvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la categoría."})
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// Create handles POST /api/categories
func (h *CategoryHandlers) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &domain.Category{Name: req.Name, Active: req.Active}
	if err := h.categorySvc.Create(c.Request.Context(), category); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"Name": []string{duplicateCategoryName}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear la categoría."})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/categories/%d", category.ID))
	c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &domain.Category{ID: req.ID, Name: req.Name, Active: req.Active}
	err := h.categorySvc.Update(c.Request.Context(), id, category)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "El ID de la categoría no coincide"})
		case errors.Is(err, domain.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"Name": []string{duplicateCategoryName}})
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Categoría no encontrada"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar la categoría."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoría actualizada correctamente"})
}

// Deactivate handles PUT /api/categories/deactivate/:id
func (h *CategoryHandlers) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.categorySvc.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Categoría no encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al desactivar la categoría."})
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/categories/search
func (h *CategoryHandlers) Search(c *gin.Context) {
	categories, err := h.categorySvc.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al buscar categorías."})
		return
	}
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No se encontraron categorías con los criterios dados."})
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

func toCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse(category)
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return out
}
