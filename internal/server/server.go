// Package server exposes the start page's API surface over HTTP for
// other frontends: the suggestion relay, the access gate, and a
// read-only bookmark listing.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/calbers/startpage/internal/config"
	"github.com/calbers/startpage/internal/gate"
	"github.com/calbers/startpage/internal/logger"
	"github.com/calbers/startpage/internal/storage"
	"github.com/calbers/startpage/internal/suggest"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http *http.Server
	log  logger.Logger
}

// Deps holds the collaborators the handlers close over.
type Deps struct {
	Store   storage.Storage
	Suggest *suggest.Client
	Gate    *gate.Gate
	Logger  logger.Logger
}

// New builds the HTTP server (router, middlewares, routes).
func New(cfg *config.Config, d Deps) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(accessLog(d.Logger))

	r.Get("/healthz", handleHealthz())
	r.Route("/api", func(r chi.Router) {
		r.Get("/suggestions", handleSuggestions(d))
		r.Post("/authenticate", handleAuthenticate(d))
		r.Get("/check-auth", handleCheckAuth(d))
		r.Get("/bookmarks", handleBookmarks(d))
	})

	s := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{http: s, log: d.Logger}
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	s.log.Info("http server listening", logger.String("addr", s.http.Addr))
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context
// deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}

// accessLog logs one line per request.
func accessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.Status()),
				logger.String("duration", time.Since(start).String()),
			)
		})
	}
}
