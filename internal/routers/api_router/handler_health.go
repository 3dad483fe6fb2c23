package api_router

import (
	"time"

	"github.com/takvimhub/event-calendar-service/internal/app"
	pkgapp "github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the health probe.
type HealthHandler struct {
	*Handler
}

func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime"`
	Remote  bool    `json:"remote"`
}

// Check reports liveness and build information.
// @Summary Health check
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Version: h.App.Version().Version,
		Uptime:  time.Since(h.App.StartTime).Seconds(),
		Remote:  h.App.SyncService.RemoteEnabled(),
	}
	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
