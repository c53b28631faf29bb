package ats

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careers-backend/internal/shared/server/middleware"
	"careers-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume check routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/analyses", h.check)
	rg.GET("/ats/analyses", h.recent)
}

func (h *Handler) check(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	maxBytes := h.Svc.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	// Generous cap on the whole request body; the service enforces the exact
	// per-file limit.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	result, err := h.Svc.CheckResume(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		var throttleErr *ThrottleError
		var validationErr *ValidationError
		var adapterErr *AdapterError
		switch {
		case errors.As(err, &throttleErr):
			c.Header("Retry-After", formatRetryAfter(throttleErr.RetryAfter))
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many resume checks. Please try again later.", nil)
		case errors.As(err, &validationErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", validationErr.Reason, gin.H{"field": validationErr.Field})
		case errors.As(err, &adapterErr):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", "An error occurred while analyzing your resume. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	recent, err := h.Svc.RecentAnalyses(c.Request.Context(), userID)
	if err != nil {
		// The check itself succeeded; history is best-effort.
		recent = nil
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"result":         result,
		"recentAnalyses": toHistory(recent),
	})
}

func (h *Handler) recent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.RecentAnalyses(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"analyses": toHistory(records)})
}

func toHistory(records []Analysis) []gin.H {
	out := make([]gin.H, 0, len(records))
	for _, rec := range records {
		out = append(out, gin.H{
			"analysisId": rec.ID,
			"score":      rec.Score,
			"result":     rec.Result,
			"createdAt":  rec.CreatedAt,
		})
	}
	return out
}

func formatRetryAfter(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
