package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pricelab/sales-tax-service/internal/config"
	"github.com/pricelab/sales-tax-service/internal/handlers"
)

// Server wraps the gin router and the underlying HTTP server so main can
// start it and shut it down gracefully.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	handlers *handlers.Handlers
	http     *http.Server
}

// New creates a configured server with all routes and middleware wired.
func New(h *handlers.Handlers, cfg *config.Config, logger zerolog.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(AccessLog(logger))
	router.Use(Recovery(logger))
	router.Use(RequestMetrics())
	if cfg.Server.RateLimit.Enabled {
		router.Use(RateLimit(cfg.Server.RateLimit))
	}

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/live", s.handlers.Live)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/receipts", s.handlers.CreateReceipt)
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
