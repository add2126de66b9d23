package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/api/middlewares"
	"github.com/moritani/scribe-go/api/models"
	"github.com/moritani/scribe-go/tool"
	"github.com/moritani/scribe-go/types"
)

type LogoutController struct {
	secure bool
}

func NewLogoutController(cfg *types.AppConfig) *LogoutController {
	return &LogoutController{secure: cfg.Production}
}

// HandleLogout clears the session cookie unconditionally and revokes the
// presented token. Calling it without an active session still succeeds.
func (ctrl *LogoutController) HandleLogout(c *gin.Context) {
	if token, err := c.Cookie(middlewares.SessionCookieName); err == nil && token != "" {
		models.RevokeSessionToken(token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", ctrl.secure, true)
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}
