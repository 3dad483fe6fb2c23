package api_router

import (
	"github.com/takvimhub/event-calendar-service/internal/app"
	"github.com/takvimhub/event-calendar-service/internal/dto"
	pkgapp "github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	apperrors "github.com/takvimhub/event-calendar-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntryHandler handles entry listing and mutation.
type EntryHandler struct {
	*Handler
}

func NewEntryHandler(a *app.App) *EntryHandler {
	return &EntryHandler{Handler: NewHandler(a)}
}

// List returns a category's entries ordered by date. Public; a pure read,
// the new-entry flag is untouched.
// @Summary List entries
// @Produce json
// @Param category query string true "Category"
// @Success 200 {object} pkgapp.Res{data=dto.CategoryEntries} "Success"
// @Router /api/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ListEntriesRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	listing, err := h.App.EntryService.List(params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(listing))
}

// Create inserts one entry and durably commits the snapshot.
// @Summary Create entry
// @Accept json
// @Produce json
// @Param params body dto.InsertEntryRequest true "Entry Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.Entry} "Success"
// @Router /api/entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.InsertEntryRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	entry, err := h.App.EntryService.Insert(ctx, params)
	if err != nil {
		h.logError(ctx, "EntryHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// Delete removes one entry and durably commits the snapshot.
// @Summary Delete entry
// @Accept json
// @Produce json
// @Param params body dto.DeleteEntryRequest true "Delete Parameters"
// @Success 200 {object} pkgapp.Res "Success"
// @Router /api/entries [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.DeleteEntryRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	if err := h.App.EntryService.Delete(ctx, params); err != nil {
		h.logError(ctx, "EntryHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// MarkSeen clears the new-entry highlight for one date. Explicit and
// idempotent; listings never do this implicitly.
// @Summary Mark entry seen
// @Accept json
// @Produce json
// @Param params body dto.MarkSeenRequest true "Mark Seen Parameters"
// @Success 200 {object} pkgapp.Res "Success"
// @Router /api/entries/seen [post]
func (h *EntryHandler) MarkSeen(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MarkSeenRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	if err := h.App.EntryService.MarkSeen(ctx, params); err != nil {
		h.logError(ctx, "EntryHandler.MarkSeen", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
