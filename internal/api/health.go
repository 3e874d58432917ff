package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bistpulse/internal/domain/dto"
)

// HealthHandler provides the health endpoints of the service.
//
// Responsibilities:
//   - /api/health: API health for the browser client, reports the server clock.
//   - /healthz: Liveness probe for process supervisors.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Register mounts the health endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Liveness)
	r.GET("/api/health", h.Health)
}

// Health godoc
// @Summary      API health
// @Description  Reports that the API is up together with the server time (UTC)
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{OK: true, Now: dto.Timestamp(h.now())})
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the service is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
