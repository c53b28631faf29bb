package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careers-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the public contact-form route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// RegisterDevRoutes attaches message administration routes for dev use.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact/messages", h.list)
	rg.POST("/contact/messages/:id/read", h.markRead)
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	msg, err := h.Svc.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit message", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"messageId": msg.ID,
		"status":    "received",
	})
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	messages, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list messages", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) markRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "message not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update message", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"status": "read"})
}
