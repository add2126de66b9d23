package api

import (
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/api/controllers"
	"github.com/moritani/scribe-go/api/middlewares"
	"github.com/moritani/scribe-go/tool"
	"github.com/moritani/scribe-go/types"
)

// Server is the HTTP server fronting the transcription service.
type Server struct {
	cfg    *types.AppConfig
	client controllers.Transcriber
	webFS  fs.FS
	engine *gin.Engine
	server *http.Server
	mu     sync.RWMutex
}

// NewServer creates the API server. webFS holds the static pages (login,
// index, assets); pass web.Static() in production.
func NewServer(cfg *types.AppConfig, client controllers.Transcriber, webFS fs.FS) *Server {
	return &Server{
		cfg:    cfg,
		client: client,
		webFS:  webFS,
	}
}

// servePage writes an embedded HTML file directly, avoiding the trailing
// slash redirects http.FileServer does for index pages.
func (s *Server) servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fs.ReadFile(s.webFS, name)
		if err != nil {
			tool.DefaultLogger.Errorf("Failed to read embedded page %s: %v", name, err)
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(gin.Recovery())
	engine.Use(middlewares.AuthGate(s.cfg.StrictSessions))

	// Initialize controllers
	loginCtrl := controllers.NewLoginController(s.cfg)
	logoutCtrl := controllers.NewLogoutController(s.cfg)
	analyzeCtrl := controllers.NewAnalyzeController(s.client, s.cfg)
	statusCtrl := controllers.NewStatusController(s.cfg)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/login", loginCtrl.HandleLogin)
		apiGroup.POST("/logout", logoutCtrl.HandleLogout)
		apiGroup.POST("/analyze", analyzeCtrl.HandleAnalyze)
		apiGroup.GET("/status", statusCtrl.HandleStatus)
	}

	if s.webFS != nil {
		engine.GET("/", s.servePage("index.html"))
		engine.GET("/login", s.servePage("login.html"))
		if assets, err := fs.Sub(s.webFS, "assets"); err == nil {
			engine.StaticFS("/assets", http.FS(assets))
		}
	}

	return engine
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	engine := s.setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: engine,
	}
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Starting API server on http://0.0.0.0:%d", s.cfg.Port)
	return s.server.ListenAndServe()
}
