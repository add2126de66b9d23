package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/types"
)

type StatusController struct {
	model  string
	strict bool
}

func NewStatusController(cfg *types.AppConfig) *StatusController {
	return &StatusController{
		model:  cfg.Model,
		strict: cfg.StrictSessions,
	}
}

// HandleStatus reports runtime info for the web UI.
func (ctrl *StatusController) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"running":         true,
		"model":           ctrl.model,
		"strict_sessions": ctrl.strict,
	})
}
