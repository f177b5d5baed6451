package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dyvideostats/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handler interface {
	QueryVideos(w http.ResponseWriter, r *http.Request)
	GetVideoHistory(w http.ResponseWriter, r *http.Request)
}

// Router handles HTTP routing
type Router struct {
	server *http.Server
	mux    http.Handler
}

func NewRouter(cfg *config.Config, handler Handler) *Router {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/videos/query", handler.QueryVideos)
		r.Get("/videos/{video_id}/history", handler.GetVideoHistory)
	})

	server := &http.Server{
		Addr:         cfg.HTTP.ListenAddr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	return &Router{
		server: server,
		mux:    r,
	}
}

// ServeHTTP lets the routes be exercised without a listener.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Start starts the HTTP server
func (r *Router) Start() error {
	return r.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (r *Router) Shutdown(ctx context.Context) error {
	if err := r.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
