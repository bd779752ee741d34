package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// OrganizerHandlers handles organizer HTTP requests
type OrganizerHandlers struct {
	organizerSvc domain.OrganizerService
}

// NewOrganizerHandlers creates new organizer handlers
func NewOrganizerHandlers(organizerSvc domain.OrganizerService) *OrganizerHandlers {
	return &OrganizerHandlers{organizerSvc: organizerSvc}
}

// OrganizerCreateRequest mirrors the creation payload: user fields
// plus the organizer profile, shifts and work days as arrays.
type OrganizerCreateRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Bio        string   `json:"bio"`
	Shifts     []string `json:"shifts"`
	WorkDays   []string `json:"workDays"`
}

// OrganizerUpdateRequest is the null-field patch payload; shifts and
// work days arrive as plain strings here.
type OrganizerUpdateRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Active     *bool   `json:"active"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Bio        string  `json:"bio"`
	Shifts     *string `json:"shifts"`
	WorkDays   *string `json:"workDays"`
}

// OrganizerRow is the raw organizer representation
type OrganizerRow struct {
	UserID     uint   `json:"userId"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Bio        string `json:"bio"`
	Shifts     string `json:"shifts"`
	WorkDays   string `json:"workDays"`
}

const (
	duplicateOrganizerName  = "Ya existe otro organizador con ese nombre."
	duplicateOrganizerEmail = "Ya existe otro organizador con ese correo."
)

// List handles GET /api/organizers
func (h *OrganizerHandlers) List(c *gin.Context) {
	organizers, err := h.organizerSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los organizadores."})
		return
	}
	rows := make([]OrganizerRow, 0, len(organizers))
	for _, o := range organizers {
		rows = append(rows, OrganizerRow{
			UserID:     o.UserID,
			Department: o.Department,
			Position:   o.Position,
			Bio:        o.Bio,
			Shifts:     o.Shifts,
			WorkDays:   o.WorkDays,
		})
	}
	c.JSON(http.StatusOK, rows)
}

// ListProfiles handles GET /api/organizers/organizers2
func (h *OrganizerHandlers) ListProfiles(c *gin.Context) {
	profiles, err := h.organizerSvc.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los organizadores."})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Get handles GET /api/organizers/:id
func (h *OrganizerHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := h.organizerSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Organizador no encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener el organizador."})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Create handles POST /api/organizers. On success the generated
// default password is echoed back to the caller.
func (h *OrganizerHandlers) Create(c *gin.Context) {
	var req OrganizerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	defaultPassword, err := h.organizerSvc.Create(c.Request.Context(), domain.OrganizerCreate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Bio:        req.Bio,
		Shifts:     req.Shifts,
		WorkDays:   req.WorkDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"Email": []string{duplicateOrganizerEmail}})
		case errors.Is(err, domain.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"Name": []string{duplicateOrganizerName}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear el organizador."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Organizador creado correctamente",
		"defaultPassword": defaultPassword,
	})
}

// Update handles PUT /api/organizers/:id
func (h *OrganizerHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OrganizerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.organizerSvc.Update(c.Request.Context(), id, domain.OrganizerPatch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     req.Active,
		Department: req.Department,
		Position:   req.Position,
		Bio:        req.Bio,
		Shifts:     req.Shifts,
		WorkDays:   req.WorkDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrganizerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Organizador no encontrado"})
		case errors.Is(err, domain.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"Name": []string{duplicateOrganizerName}})
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"Email": []string{duplicateOrganizerEmail}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar el organizador."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organizador actualizado correctamente"})
}

// Deactivate handles PUT /api/organizers/deactivate/:id
func (h *OrganizerHandlers) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.organizerSvc.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Organizador no encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al desactivar el organizador."})
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/organizers/search. Unlike the other search
// endpoints, an empty result is a 200 with an empty list.
func (h *OrganizerHandlers) Search(c *gin.Context) {
	profiles, err := h.organizerSvc.Search(c.Request.Context(), domain.OrganizerFilter{
		Name:       c.Query("name"),
		Email:      c.Query("email"),
		Department: c.Query("department"),
		Position:   c.Query("position"),
		Shift:      c.Query("shift"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al buscar organizadores."})
		return
	}
	c.JSON(http.StatusOK, profiles)
}
