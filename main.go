package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/moritani/scribe-go/api"
	"github.com/moritani/scribe-go/api/models"
	"github.com/moritani/scribe-go/tool"
	"github.com/moritani/scribe-go/vision"
	"github.com/moritani/scribe-go/web"
)

func main() {
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.UsePort > 0 {
		appCfg.Port = cfg.UsePort
	}
	if cfg.UseModel != "" {
		appCfg.Model = cfg.UseModel
	}
	if cfg.UseStrictSessions {
		appCfg.StrictSessions = true
	}

	// initialize logger
	tool.InitLogger()
	if cfg.Log == "" {
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.Log) {
		case "dev":
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		case "prod":
			tool.DefaultLogger.SetLevel(log.InfoLevel)
		case "none":
			tool.DefaultLogger.SetLevel(log.FatalLevel)
		default:
			tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", cfg.Log)
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		}
	}

	if appCfg.OpenAIAPIKey == "" {
		tool.DefaultLogger.Error("Missing OpenAI API key; transcription requests will fail until OPENAI_API_KEY is set")
	}
	if appCfg.AuthPassword == "" {
		tool.DefaultLogger.Warn("AUTH_PASSWORD is not set; all login attempts will be rejected")
	}

	models.InitSessionRegistry(appCfg.SessionTTL.Std())
	models.InitTranscriptionCache(appCfg.CacheTTL.Std())

	client := vision.NewClient(vision.Options{
		APIKey:    appCfg.OpenAIAPIKey,
		BaseURL:   appCfg.APIBaseURL,
		Model:     appCfg.Model,
		MaxTokens: appCfg.MaxTokens,
		Timeout:   60 * time.Second,
	})

	server := api.NewServer(appCfg, client, web.Static())
	if err := server.Start(); err != nil {
		tool.DefaultLogger.Fatalf("API server startup failed: %v", err)
	}
}
