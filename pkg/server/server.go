// Package server provides the HTTP API for Pinwall.
//
// The API exposes the arrangement pipeline and board storage over REST:
//
//	GET    /healthz                  - liveness probe
//	POST   /api/arrange              - arrange a board supplied in the request
//	GET    /api/boards               - list stored boards
//	GET    /api/boards/{name}        - fetch a stored board
//	PUT    /api/boards/{name}        - create or replace a stored board
//	DELETE /api/boards/{name}        - delete a stored board
//	POST   /api/boards/{name}/arrange - arrange a stored board and save it back
//
// Errors are returned as JSON envelopes carrying the machine-readable code
// from pkg/errors, so clients can branch without parsing messages.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pinwall/pinwall/pkg/pipeline"
	"github.com/pinwall/pinwall/pkg/store"
)

// Config holds server construction options.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Runner executes arrangements. Required.
	Runner *pipeline.Runner

	// Store persists boards. Required.
	Store store.Store

	// Logger receives request and error logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server is the Pinwall HTTP API.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	http   *http.Server
}

// New builds a server with its routes mounted.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/arrange", s.handleArrange)
		r.Route("/boards", func(r chi.Router) {
			r.Get("/", s.handleListBoards)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetBoard)
				r.Put("/", s.handlePutBoard)
				r.Delete("/", s.handleDeleteBoard)
				r.Post("/arrange", s.handleArrangeStored)
			})
		})
	})
	s.router = r

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeHTTP implements http.Handler, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down http server")
		return s.http.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
