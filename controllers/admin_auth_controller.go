package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/dto"
	"github.com/princinho/amanatbackend/utils"
)

// AdminLogin verifies the shared admin key and issues a one-hour admin
// token, returned both in the body and as a secure cookie.
func AdminLogin(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AdminLoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		if !utils.VerifyAdminKey(app.Cfg.AdminKey, body.AdminKey) {
			utils.RespondError(c, utils.Unauthorized("Invalid admin key"))
			return
		}

		token, err := utils.GenerateAdminToken(app.Cfg.JWTSecret, utils.AdminTokenTTL)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "token",
			Value:    token,
			Path:     "/",
			MaxAge:   int(utils.AdminTokenTTL.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode, // for cross-site
		})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
		})
	}
}
