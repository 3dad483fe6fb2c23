package middleware

import (
	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound handles unmatched routes.
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFound)
		c.Abort()
	}
}
