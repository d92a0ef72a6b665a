package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axrasp/start-burger/utils"
)

// ManagerOnly gates the restaurateur dashboard. Admins pass everywhere.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}
		if userRole != "manager" && userRole != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("manager access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
