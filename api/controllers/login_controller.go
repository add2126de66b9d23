package controllers

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/api/middlewares"
	"github.com/moritani/scribe-go/api/models"
	"github.com/moritani/scribe-go/tool"
	"github.com/moritani/scribe-go/types"
)

type LoginController struct {
	password   string
	sessionTTL int // cookie max-age in seconds
	secure     bool
}

func NewLoginController(cfg *types.AppConfig) *LoginController {
	return &LoginController{
		password:   cfg.AuthPassword,
		sessionTTL: int(cfg.SessionTTL.Std().Seconds()),
		secure:     cfg.Production,
	}
}

// HandleLogin verifies the submitted password and, on success, issues a fresh
// session token as an HTTP-only cookie. Failures are a generic 401 with no
// detail on which check failed.
func (ctrl *LoginController) HandleLogin(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		tool.DefaultLogger.Errorf("Failed to read login request body: %v", err)
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to read request body"))
		return
	}

	var request types.LoginRequest
	if err := sonic.Unmarshal(body, &request); err != nil {
		tool.DefaultLogger.Errorf("Failed to parse login request: %v", err)
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}

	if !tool.SecureCompare(request.Password, ctrl.password) {
		c.JSON(http.StatusUnauthorized, tool.FastReturnFailure())
		return
	}

	token, err := tool.GenerateSessionToken()
	if err != nil {
		tool.DefaultLogger.Errorf("Failed to generate session token: %v", err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to create session"))
		return
	}
	models.RegisterSessionToken(token)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookieName, token, ctrl.sessionTTL, "/", "", ctrl.secure, true)
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}
