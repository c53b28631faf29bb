package jobs

import (
	"net/http"
	"strconv"
	"time"

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

// RegisterRoutes attaches public job listing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/government", h.government)
	rg.GET("/jobs/private", h.private)
}

func (h *Handler) government(c *gin.Context) {
	filter := GovernmentFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Status:   c.DefaultQuery("status", StatusAll),
	}
	switch filter.Status {
	case StatusAll, StatusActive, StatusExpired:
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be all, active, or expired", nil)
		return
	}

	result, err := h.Svc.Government(c.Request.Context(), filter, pageParam(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	now := time.Now().UTC()
	items := make([]gin.H, 0, len(result.Items))
	for _, j := range result.Items {
		items = append(items, gin.H{
			"id":            j.ID,
			"company":       j.Company,
			"postName":      j.PostName,
			"education":     j.Education,
			"totalPosts":    j.TotalPosts,
			"location":      j.Location,
			"lastDate":      j.LastDate.Format("2006-01-02"),
			"applyLink":     j.ApplyLink,
			"isExpired":     j.IsExpired(now),
			"daysRemaining": j.DaysRemaining(now),
		})
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"jobs":       items,
		"total":      result.Total,
		"page":       result.Page,
		"pageSize":   result.PageSize,
		"totalPages": result.TotalPages,
	})
}

func (h *Handler) private(c *gin.Context) {
	filter := PrivateFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
	}

	result, err := h.Svc.Private(c.Request.Context(), filter, pageParam(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"jobs":       result.Items,
		"total":      result.Total,
		"page":       result.Page,
		"pageSize":   result.PageSize,
		"totalPages": result.TotalPages,
	})
}

func pageParam(c *gin.Context) int {
	page := 1
	if v := c.Query("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}
	return page
}
