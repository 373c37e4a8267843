package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/companies"
	"jd-backend/internal/jobdescriptions"
	"jd-backend/internal/services/health"
	"jd-backend/internal/shared/config"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/server/middleware"
	"jd-backend/internal/shared/server/respond"
)

// modelGroup is the rate limit group for routes that call the model.
const modelGroup = "MODEL"

// RouterDeps carries the handlers mounted under /api/v1.
type RouterDeps struct {
	Config          config.Config
	Verifier        middleware.TokenVerifier
	JobDescriptions *jobdescriptions.Handler
	Companies       *companies.Handler
	Limiter         *middleware.RateLimiter
	Health          *health.Service
}

// NewRouter builds the gin engine. Health and metrics are public; everything
// else requires a bearer token or guest id.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, deps.Config.ObjectStoreType, deps.Config.LLMProvider)
	}
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	api.GET("/metrics", metrics.Handler())

	authed := api.Group("")
	authed.Use(
		middleware.Auth(deps.Verifier),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				modelGroup: {PerMinute: deps.Config.ModelRatePerMin, Burst: deps.Config.ModelRateBurst},
			},
			GroupFor: groupFor,
			Limiter:  deps.Limiter,
		}),
	)
	registerMeRoutes(authed)
	if deps.JobDescriptions != nil {
		deps.JobDescriptions.RegisterRoutes(authed)
	}
	if deps.Companies != nil {
		deps.Companies.RegisterRoutes(authed)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})
	return r
}

func groupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/jd/upload", "/api/v1/jd/enhance":
		return modelGroup
	default:
		return ""
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
