package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/utils"
)

// AdminAuth verifies the admin token on every request. The bearer header
// takes precedence over the "token" cookie. Missing or invalid tokens are a
// 401; a valid token whose claims lack the admin flag is a 403.
func AdminAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			utils.RespondError(c, utils.Unauthorized("Admin authentication required"))
			return
		}

		claims, err := utils.ValidateAdminToken(tokenStr, jwtSecret)
		if err != nil {
			utils.RespondError(c, utils.Unauthorized("Invalid or expired token"))
			return
		}

		if !claims.IsAdmin || claims.Type != "admin" {
			utils.RespondError(c, utils.Forbidden("Access denied. Admin privileges required."))
			return
		}

		c.Set("isAdmin", true)
		c.Set("adminClaims", claims)
		c.Next()
	}
}
