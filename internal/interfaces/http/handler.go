package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"apexrenting/internal/infrastructure"
	"apexrenting/internal/usecases"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	resolver *usecases.IdentityResolver
	portal   *usecases.PortalUsecase
	registry *usecases.RedirectRegistry
	hub      *infrastructure.InvoiceHub
}

func NewHandler(resolver *usecases.IdentityResolver, portal *usecases.PortalUsecase, registry *usecases.RedirectRegistry, hub *infrastructure.InvoiceHub) *Handler {
	return &Handler{
		resolver: resolver,
		portal:   portal,
		registry: registry,
		hub:      hub,
	}
}

func SetupRoutes(r *gin.Engine, auth *usecases.AuthUsecase, resolver *usecases.IdentityResolver, portal *usecases.PortalUsecase, registry *usecases.RedirectRegistry, hub *infrastructure.InvoiceHub, contact *PublicHandler, adminHandler *AdminHandler, middleware *Middleware) {
	h := NewHandler(resolver, portal, registry, hub)

	// Apply Security Middleware
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(middleware.CORSMiddleware())

	// Public marketing funnel
	site := r.Group("/api/site")
	{
		site.GET("/landing", contact.GetLanding)
		site.GET("/about", contact.GetAbout)
		site.POST("/contact", contact.SubmitContact)
	}

	// Public Auth Routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var loginReq struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, err := auth.Login(loginReq.Email, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})

		authGroup.POST("/register", func(c *gin.Context) {
			var regReq struct {
				Email    string `json:"email"`
				Password string `json:"password"`
				FullName string `json:"full_name"`
			}
			if err := c.ShouldBindJSON(&regReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			if !ValidEmail(regReq.Email) || len(regReq.Password) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password (min 6 chars)"})
				return
			}
			if err := auth.Register(regReq.Email, regReq.Password, regReq.FullName); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"status": "registered"})
		})
	}

	// Protected client portal
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(10, 20))
	{
		api.GET("/me", h.GetIdentity)
		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:id/invoices", h.ListInvoices)
		api.GET("/properties/:id/summary", h.GetPropertySummary)
		api.GET("/properties/:id/stream", h.StreamInvoiceChanges)
		api.GET("/redirects/me", h.GetMyRedirects)
	}

	// Admin panel (typed authorization decision, one guard for all routes)
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/users", adminHandler.GetAllUsers)

		admin.POST("/properties", adminHandler.CreateProperty)
		admin.PUT("/properties/:id", adminHandler.UpdateProperty)
		admin.DELETE("/properties/:id", adminHandler.DeleteProperty)

		admin.GET("/assignments", adminHandler.ListAssignments)
		admin.POST("/assignments", adminHandler.CreateAssignment)
		admin.DELETE("/assignments/:id", adminHandler.DeleteAssignment)

		admin.GET("/redirects", adminHandler.ListRedirects)
		admin.POST("/redirects", adminHandler.UpsertRedirect)
		admin.DELETE("/redirects/:id", adminHandler.DeleteRedirect)

		admin.GET("/contact-messages", contact.ListContactMessages)
	}
}

// resolveIdentity rebuilds the caller's identity from storage; views never
// share cached state.
func (h *Handler) resolveIdentity(c *gin.Context) (*usecases.Identity, bool) {
	identity, err := h.resolver.Resolve(c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, usecases.ErrUnknownUser) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve identity"})
		}
		return nil, false
	}
	return identity, true
}

// GetIdentity returns who the caller is and what they can see. An empty
// property list is a valid response, not an error.
func (h *Handler) GetIdentity(c *gin.Context) {
	identity, ok := h.resolveIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *Handler) ListProperties(c *gin.Context) {
	identity, ok := h.resolveIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, identity.Properties)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	identity, ok := h.resolveIdentity(c)
	if !ok {
		return
	}
	invoices, err := h.portal.ListInvoices(identity, c.Param("id"))
	if err != nil {
		h.renderPortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) GetPropertySummary(c *gin.Context) {
	identity, ok := h.resolveIdentity(c)
	if !ok {
		return
	}
	summary, err := h.portal.Summarize(identity, c.Param("id"))
	if err != nil {
		h.renderPortalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetMyRedirects(c *gin.Context) {
	redirects, err := h.registry.Get(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redirects"})
		return
	}
	c.JSON(http.StatusOK, redirects)
}

// StreamInvoiceChanges holds an SSE stream open for one property
// selection. Each "reload" event tells the client to re-fetch the invoice
// list; the subscription is released when the client goes away.
func (h *Handler) StreamInvoiceChanges(c *gin.Context) {
	identity, ok := h.resolveIdentity(c)
	if !ok {
		return
	}
	propertyID := c.Param("id")
	if err := h.portal.CanAccessProperty(identity, propertyID); err != nil {
		h.renderPortalError(c, err)
		return
	}

	sub := h.hub.Subscribe(propertyID)
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case _, open := <-sub.Events():
			if !open {
				return false
			}
			c.SSEvent("reload", gin.H{"property_id": propertyID})
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}

func (h *Handler) renderPortalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrPropertyForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load property data"})
	}
}
