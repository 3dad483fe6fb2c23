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

// AuthHandler handles admin authentication.
type AuthHandler struct {
	*Handler
}

func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(a)}
}

// Login verifies the shared admin password and issues a bearer token.
// @Summary Admin login
// @Accept json
// @Produce json
// @Param params body dto.LoginRequest true "Login Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.LoginResult} "Success"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LoginRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AuthHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	result, err := h.App.AuthService.Login(params.Password, pkgapp.GetRequestIP(c))
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(result))
}
