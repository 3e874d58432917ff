package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/bistpulse/internal/middleware"
)

// APIPrefix is the path prefix of every JSON endpoint.
const APIPrefix = "/api/"

// RouterConfig holds the HTTP knobs that come from configuration.
type RouterConfig struct {
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	StaticDir          string // optional directory served for non-API paths
}

// NewRouter creates a Gin engine with every route configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, NoStore,
//     CORS, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any) and the health endpoints.
//   - Configures the API routes (/api/quotes, /api/history).
//   - Answers unknown API paths with 404 and wrong methods with 405, both as JSON.
func NewRouter(handler *Handler, health *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.NoStore(),
		middleware.CORS(APIPrefix),
		middleware.ErrorHandler,
		middleware.RateLimiter(cfg.RateLimitPerMinute),
		middleware.Timeout(cfg.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Health ───────────────────────────────────
	health.Register(router)

	// ─── API ──────────────────────────────────────
	api := router.Group("/api")
	{
		api.GET("/quotes", handler.GetQuotes)
		api.GET("/history", handler.GetHistory)
	}

	// ─── Fallbacks ────────────────────────────────
	router.NoRoute(notFound(cfg.StaticDir))
	router.NoMethod(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusMethodNotAllowed, "method not allowed", nil)
	})

	return router
}

// notFound answers unknown API paths with JSON. Other paths are served from
// staticDir when one is configured.
func notFound(staticDir string) gin.HandlerFunc {
	var files http.Handler
	if staticDir != "" {
		files = http.FileServer(gin.Dir(staticDir, false))
	}
	return func(c *gin.Context) {
		if files != nil && !strings.HasPrefix(c.Request.URL.Path, APIPrefix) &&
			(c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			c.Status(http.StatusOK)
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		middleware.AbortWithError(c, http.StatusNotFound, "not found", nil)
	}
}
