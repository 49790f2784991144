package http

import (
	"errors"
	"net/http"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"
	"apexrenting/internal/repository"
	"apexrenting/internal/usecases"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	portal      *usecases.PortalUsecase
	registry    *usecases.RedirectRegistry
	properties  interfaces.PropertyStore
	assignments interfaces.AssignmentStore
	profiles    interfaces.ProfileStore
}

func NewAdminHandler(portal *usecases.PortalUsecase, registry *usecases.RedirectRegistry, properties interfaces.PropertyStore, assignments interfaces.AssignmentStore, profiles interfaces.ProfileStore) *AdminHandler {
	return &AdminHandler{
		portal:      portal,
		registry:    registry,
		properties:  properties,
		assignments: assignments,
		profiles:    profiles,
	}
}

// GetStats returns the dashboard counters.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.portal.GetAdminStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAllUsers lists profiles for assignment and redirect pickers.
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.profiles.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Property management

func (h *AdminHandler) CreateProperty(c *gin.Context) {
	var payload struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !ValidateLength(payload.Name, 1, MaxNameLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property name is required"})
		return
	}

	property := &entities.Property{Name: payload.Name, Address: payload.Address}
	if err := h.properties.Create(property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save property"})
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *AdminHandler) UpdateProperty(c *gin.Context) {
	var payload struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !ValidateLength(payload.Name, 1, MaxNameLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property name is required"})
		return
	}

	if err := h.properties.Update(c.Param("id"), payload.Name, payload.Address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteProperty removes a property; its assignments and invoices cascade
// away with it.
func (h *AdminHandler) DeleteProperty(c *gin.Context) {
	if err := h.properties.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Assignment management

func (h *AdminHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignments.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AdminHandler) CreateAssignment(c *gin.Context) {
	var payload struct {
		UserID     string `json:"user_id"`
		PropertyID string `json:"property_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if payload.UserID == "" || payload.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both user and property are required"})
		return
	}

	err := h.assignments.Create(payload.UserID, payload.PropertyID)
	if errors.Is(err, repository.ErrDuplicateAssignment) {
		c.JSON(http.StatusConflict, gin.H{"error": "This user is already assigned to this property"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign property"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

func (h *AdminHandler) DeleteAssignment(c *gin.Context) {
	if err := h.assignments.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Redirect management

// ListRedirects supports ?email= as a case-insensitive substring filter.
func (h *AdminHandler) ListRedirects(c *gin.Context) {
	listings, err := h.registry.List(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user redirects"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *AdminHandler) UpsertRedirect(c *gin.Context) {
	var payload struct {
		Email        string `json:"email"`
		RedirectType string `json:"redirect_type"`
		RedirectURL  string `json:"redirect_url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !ValidRedirectURL(payload.RedirectURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid http(s) redirect URL is required"})
		return
	}

	err := h.registry.Set(payload.Email, payload.RedirectType, payload.RedirectURL)
	switch {
	case errors.Is(err, usecases.ErrRedirectUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrEmptyRedirectURL), errors.Is(err, usecases.ErrBadRedirectType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save redirect URL"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "saved"})
	}
}

func (h *AdminHandler) DeleteRedirect(c *gin.Context) {
	if err := h.registry.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete redirect URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
