package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"tally/internal/driver"
)

// Config holds the HTTP shim settings.
type Config struct {
	Addr string
	// Eval is passed through to the pipeline for every request.
	Eval driver.Options
}

// Server exposes the evaluation pipeline over HTTP. It is pure glue: every
// request is forwarded to driver.Evaluate and the result or first diagnostic
// is serialised back.
type Server struct {
	cfg    Config
	router *httprouter.Router
	server *http.Server
}

// New creates a server with its routes configured.
func New(cfg Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: httprouter.New(),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s", s.cfg.Addr)
	return s.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealth)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/evaluate", s.handleEvaluate)
}
