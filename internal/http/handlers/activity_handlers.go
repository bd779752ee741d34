package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// ActivityHandlers handles activity HTTP requests
type ActivityHandlers struct {
	activitySvc domain.ActivityService
}

// NewActivityHandlers creates new activity handlers
func NewActivityHandlers(activitySvc domain.ActivityService) *ActivityHandlers {
	return &ActivityHandlers{activitySvc: activitySvc}
}

// ActivityRequest is the create/update payload
type ActivityRequest struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	CategoryID  uint   `json:"categoryId"`
	OrganizerID uint   `json:"organizerId"`
	Active      bool   `json:"active"`
}

// ActivityResponse is the full entity representation
type ActivityResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	CategoryID  uint   `json:"categoryId"`
	OrganizerID uint   `json:"organizerId"`
	Active      bool   `json:"active"`
}

// List handles GET /api/activities
func (h *ActivityHandlers) List(c *gin.Context) {
	activities, err := h.activitySvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las actividades."})
		return
	}
	c.JSON(http.StatusOK, toActivityResponses(activities))
}

// Get handles GET /api/activities/:id
func (h *ActivityHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := h.activitySvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la actividad."})
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(*activity))
}

// Create handles POST /api/activities
func (h *ActivityHandlers) Create(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDates(c, req) {
		return
	}

	activity := reqToActivity(req)
	if err := h.activitySvc.Create(c.Request.Context(), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear la actividad."})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/activities/%d", activity.ID))
	c.JSON(http.StatusCreated, toActivityResponse(*activity))
}

// Update handles PUT /api/activities/:id
func (h *ActivityHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDates(c, req) {
		return
	}

	err := h.activitySvc.Update(c.Request.Context(), id, reqToActivity(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDMismatch):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domain.ErrActivityNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar la actividad."})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate handles PUT /api/activities/deactivate/:id
func (h *ActivityHandlers) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.activitySvc.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Actividad no encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al desactivar la actividad."})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPublic handles GET /api/activities/public/:id
func (h *ActivityHandlers) GetPublic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.activitySvc.GetPublic(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la actividad."})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Search handles GET /api/activities/search
func (h *ActivityHandlers) Search(c *gin.Context) {
	filter := domain.ActivityFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	}

	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
			return
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}
	if v := c.Query("organizerId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizerId"})
			return
		}
		oid := uint(id)
		filter.OrganizerID = &oid
	}
	if v := c.Query("date"); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		filter.Date = v
	}

	views, err := h.activitySvc.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al buscar actividades."})
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No se encontraron actividades con los criterios dados."})
		return
	}
	c.JSON(http.StatusOK, views)
}

// parseID reads the :id path parameter, answering 400 on garbage
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func validDates(c *gin.Context, req ActivityRequest) bool {
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return false
		}
	}
	for _, v := range []string{req.StartTime, req.EndTime} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("15:04", v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time"})
			return false
		}
	}
	return true
}

func reqToActivity(req ActivityRequest) *domain.Activity {
	return &domain.Activity{
		ID:          req.ID,
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Capacity:    req.Capacity,
		CategoryID:  req.CategoryID,
		OrganizerID: req.OrganizerID,
		Active:      req.Active,
	}
}

func toActivityResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse(a)
}

func toActivityResponses(activities []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}
