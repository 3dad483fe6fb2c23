package api_router

import (
	"github.com/takvimhub/event-calendar-service/internal/app"
	pkgapp "github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	apperrors "github.com/takvimhub/event-calendar-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the persistence synchronizer to administrators.
type SyncHandler struct {
	*Handler
}

func NewSyncHandler(a *app.App) *SyncHandler {
	return &SyncHandler{Handler: NewHandler(a)}
}

// Commit forces a snapshot commit outside the per-mutation flow.
// @Summary Commit snapshot
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SyncCommitResult} "Success"
// @Router /api/sync/commit [post]
func (h *SyncHandler) Commit(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	result, err := h.App.SyncService.Commit(ctx)
	if err != nil {
		h.logError(ctx, "SyncHandler.Commit", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(result))
}

// Reload replaces in-memory state from the durable snapshot, discarding
// uncommitted mutations. Used after a reported conflict.
// @Summary Reload snapshot
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SyncStatus} "Success"
// @Router /api/sync/reload [post]
func (h *SyncHandler) Reload(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	if err := h.App.SyncService.Load(ctx); err != nil {
		h.logError(ctx, "SyncHandler.Reload", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(h.App.SyncService.Status()))
}

// Status reports version tokens and sync timestamps.
// @Summary Sync status
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SyncStatus} "Success"
// @Router /api/sync/status [get]
func (h *SyncHandler) Status(c *gin.Context) {
	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(h.App.SyncService.Status()))
}
