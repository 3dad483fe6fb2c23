package api_router

import (
	"github.com/takvimhub/event-calendar-service/internal/app"
	"github.com/takvimhub/event-calendar-service/internal/dto"
	pkgapp "github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	apperrors "github.com/takvimhub/event-calendar-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the month grid projection.
type CalendarHandler struct {
	*Handler
}

func NewCalendarHandler(a *app.App) *CalendarHandler {
	return &CalendarHandler{Handler: NewHandler(a)}
}

// MonthGrid builds the Monday-first week grid for one month with entries
// mapped onto their days. Public.
// @Summary Month grid
// @Produce json
// @Param category query string true "Category"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} pkgapp.Res{data=dto.MonthGrid} "Success"
// @Router /api/calendar [get]
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MonthGridRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	grid, err := h.App.CalendarService.MonthGrid(params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(grid))
}
