package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careers-backend/internal/ats"
	googleauth "careers-backend/internal/auth"
	"careers-backend/internal/contact"
	"careers-backend/internal/jobs"
	"careers-backend/internal/shared/config"
	"careers-backend/internal/shared/metrics"
	"careers-backend/internal/shared/server/middleware"
	"careers-backend/internal/shared/server/respond"
	"careers-backend/internal/users"
)

// RouterDeps carries pre-built handlers into route registration.
type RouterDeps struct {
	Config         config.Config
	ATSHandler     *ats.Handler
	JobsHandler    *jobs.Handler
	ContactHandler *contact.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	} else {
		registerMeRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.ContactHandler != nil {
		deps.ContactHandler.RegisterRoutes(api)
	}
	if deps.ATSHandler != nil {
		deps.ATSHandler.RegisterRoutes(api)
	}

	if cfg.Env == "dev" && deps.ContactHandler != nil {
		dev := api.Group("/dev")
		deps.ContactHandler.RegisterDevRoutes(dev)
	}

	return r
}

// rateLimitConfig shapes API-wide burst protection. Public listing routes get
// more headroom than the default; health and metrics are never limited. The
// resume check quota is separate and much stricter.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 40},
			"PUBLIC":  {Rate: 25, Burst: 100},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.FullPath()
			switch {
			case path == "/api/v1/health" || path == "/api/v1/metrics":
				return "INTERNAL"
			case c.Request.Method == http.MethodGet && strings.HasPrefix(path, "/api/v1/jobs"):
				return "PUBLIC"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
