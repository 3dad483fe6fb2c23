package middleware

import (
	"strings"

	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AdminTokenKey stores the parsed admin claims in gin.Context.
const AdminTokenKey = "admin_token"

// AdminAuthTokenWithConfig guards mutation routes: a request is
// authenticated by its own bearer token, there is no process wide login
// state. Accepts "Authorization: Bearer <token>" or a token query
// parameter.
func AdminAuthTokenWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		response := app.NewResponse(c)

		if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = strings.TrimPrefix(s, "Bearer ")
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		}

		if token == "" {
			response.ToResponse(code.ErrorNotAdminAuthToken)
			c.Abort()
			return
		}

		claims, err := app.ParseTokenWithKey(token, secretKey)
		if err != nil {
			response.ToResponse(code.ErrorInvalidAdminAuthToken)
			c.Abort()
			return
		}
		c.Set(AdminTokenKey, claims)

		c.Next()
	}
}
