// Package ui exposes the comparison engine over HTTP. It is a thin harness:
// the engine consumes plain numeric values and the handlers do nothing but
// decode, delegate and encode.
package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ghomem/lgc/app"
	"github.com/ghomem/lgc/internal/config"
)

// Server represents the web server for the trial comparison API
type Server struct {
	router  *gin.Engine
	service *app.ComparisonService
	cfg     *config.Config
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, service *app.ComparisonService) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		service: service,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/defaults", s.handleDefaults)
		api.POST("/compare", s.handleCompare)
		api.POST("/summary", s.handleSummary)
	}
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] Listening on %s (variance=%s interval=%s)", addr,
		s.cfg.Engine.VarianceMethod, s.cfg.Engine.IntervalMethod)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
