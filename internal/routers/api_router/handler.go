// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"context"

	"github.com/takvimhub/event-calendar-service/internal/app"
	"github.com/takvimhub/event-calendar-service/internal/middleware"

	"go.uber.org/zap"
)

// Handler is the base handler embedding the app container. All API
// handlers embed it for dependency injection.
type Handler struct {
	App *app.App
}

// NewHandler creates a base Handler instance.
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError logs a handler error together with the request trace id.
func (h *Handler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
