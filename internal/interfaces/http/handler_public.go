package http

import (
	"net/http"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the marketing funnel: static page content and the
// contact form sink. No authentication.
type PublicHandler struct {
	contacts interfaces.ContactStore
}

func NewPublicHandler(contacts interfaces.ContactStore) *PublicHandler {
	return &PublicHandler{contacts: contacts}
}

func (h *PublicHandler) GetLanding(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company":  "Apex Renting Solutions",
		"tagline":  "Property management made simple",
		"headline": "Streamlined rentals for owners and tenants",
		"features": []gin.H{
			{"title": "Lease Management", "description": "Create and track lease agreements through your dashboard."},
			{"title": "Expense Insights", "description": "Monthly and category breakdowns of every property's invoices."},
			{"title": "Dedicated Support", "description": "A property manager one message away."},
		},
	})
}

func (h *PublicHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company": "Apex Renting Solutions",
		"mission": "We take the friction out of property rental so owners can focus on their tenants.",
		"values":  []string{"Transparency", "Responsiveness", "Trust"},
	})
}

// SubmitContact stores a contact form submission. Validation failures are
// rejected before the write and surfaced inline.
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !ValidateLength(payload.Name, 1, MaxNameLength) ||
		!ValidEmail(payload.Email) ||
		!ValidateLength(payload.Message, 1, MaxMessageLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, a valid email, and a message are required"})
		return
	}

	msg := &entities.ContactMessage{
		Name:    SanitizeString(payload.Name),
		Email:   payload.Email,
		Message: SanitizeString(payload.Message),
	}
	if err := h.contacts.Create(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "received"})
}

// ListContactMessages is mounted under the admin group.
func (h *PublicHandler) ListContactMessages(c *gin.Context) {
	messages, err := h.contacts.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
