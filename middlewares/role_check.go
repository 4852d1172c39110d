package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/utils"
)

// RequireRoles allows the request through only when the authenticated
// principal carries one of the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found in context"))
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid role format"))
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden,
			fmt.Errorf("access requires one of roles: %s", strings.Join(roles, ", ")))
		c.Abort()
	}
}
