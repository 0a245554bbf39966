// Package server is the HTTP front of the classifiers. It validates inputs,
// calls the evaluation service and renders JSON; it also serves the web
// front end from a static directory.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/abhisek/estudia/internal/config"
	"github.com/abhisek/estudia/internal/evaluation"
)

// StatusMessage is returned by the status endpoint.
const StatusMessage = "API Sistema Académico Inteligente activa"

// Evaluator is the subset of evaluation.Service the handlers use.
type Evaluator interface {
	ClassifyRisk(promedio float64, inasistencias, participacion int, horasEstudio float64) string
	ClassifyStress(sueno, carga, ansiedad int) evaluation.StressResult
}

// Server routes API calls to an Evaluator.
type Server struct {
	eval   Evaluator
	cfg    config.ServerConfig
	logger *log.Logger
	mux    *http.ServeMux
}

// New creates a Server and registers its routes. A nil logger discards
// request logs.
func New(eval Evaluator, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{eval: eval, cfg: cfg, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/estado", s.handleStatus)
	s.mux.HandleFunc("GET /api/evaluar-estres", s.handleStress)
	s.mux.HandleFunc("POST /api/evaluar-riesgo", s.handleRisk)

	if info, err := os.Stat(s.cfg.StaticDir); err == nil && info.IsDir() {
		s.mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
		return
	}
	s.mux.HandleFunc("GET /{$}", s.handleStatus)
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = withLogging(s.logger, h)
	h = withCORS(s.cfg.AllowedOrigins, h)
	h = withRequestID(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
