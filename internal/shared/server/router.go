package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/accounts"
	"resumate-backend/internal/builder"
	"resumate-backend/internal/render"
	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/auth"
	"resumate-backend/internal/shared/config"
	"resumate-backend/internal/shared/metrics"
	"resumate-backend/internal/shared/server/middleware"
	"resumate-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config   config.Config
	Tokens   *auth.Manager
	Accounts *accounts.Handler
	Google   *accounts.GoogleHandler
	Resumes  *resumes.Handler
	Builder  *builder.Handler
	Render   *render.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Auth endpoints stay public; everything touching resumes requires a session.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.Accounts.RegisterPublicRoutes(api)
	deps.Google.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens))
	deps.Accounts.RegisterProtectedRoutes(protected)
	deps.Resumes.RegisterRoutes(protected)
	deps.Builder.RegisterRoutes(protected)
	deps.Render.RegisterRoutes(protected)

	return r
}

// Addr formats the listen address for a port value.
func Addr(port string) string {
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
