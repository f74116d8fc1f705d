// ABOUTME: HTTP server assembly, routing, and graceful shutdown
// ABOUTME: Builds the middleware chain and mounts all API routes

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/skoehler/tasktrack/internal/auth"
	"github.com/skoehler/tasktrack/internal/config"
	"github.com/skoehler/tasktrack/internal/store"
	"github.com/skoehler/tasktrack/internal/tasks"
)

// Server hosts the tasktrack HTTP API.
type Server struct {
	cfg        *config.Config
	store      store.Store
	authSvc    *auth.Service
	taskSvc    *tasks.Service
	catSvc     *tasks.CategoryService
	issuer     *auth.TokenIssuer
	logger     *slog.Logger
	httpServer *http.Server
}

// New assembles a server from config and an open store.
func New(cfg *config.Config, st store.Store, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	issuer, err := auth.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token issuer: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		store:   st,
		authSvc: auth.NewService(st, issuer, logger),
		taskSvc: tasks.NewService(st, logger),
		catSvc:  tasks.NewCategoryService(st, logger),
		issuer:  issuer,
		logger:  logger.With("component", "server"),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler builds the full route tree with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.Handle("GET /api/tasks", s.requireUser(s.handleListTasks))
	mux.Handle("POST /api/tasks", s.requireUser(s.handleCreateTask))
	mux.Handle("GET /api/tasks/completed", s.requireUser(s.handleCompletedTasks))
	mux.Handle("GET /api/tasks/pending", s.requireUser(s.handlePendingTasks))
	mux.Handle("GET /api/tasks/search", s.requireUser(s.handleSearchTasks))
	mux.Handle("GET /api/tasks/stats", s.requireUser(s.handleTaskStats))
	mux.Handle("GET /api/tasks/{id}", s.requireUser(s.handleGetTask))
	mux.Handle("PUT /api/tasks/{id}", s.requireUser(s.handleUpdateTask))
	mux.Handle("DELETE /api/tasks/{id}", s.requireUser(s.handleDeleteTask))

	mux.Handle("GET /api/categories", s.requireUser(s.handleListCategories))
	mux.Handle("POST /api/categories", s.requireUser(s.handleCreateCategory))
	mux.Handle("GET /api/categories/{id}", s.requireUser(s.handleGetCategory))
	mux.Handle("PUT /api/categories/{id}", s.requireUser(s.handleUpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", s.requireUser(s.handleDeleteCategory))
	mux.Handle("GET /api/categories/{id}/tasks", s.requireUser(s.handleCategoryTasks))

	mux.Handle("GET /api/users/me", s.requireUser(s.handleCurrentUser))
	mux.Handle("GET /api/users", s.requireAdmin(s.handleListUsers))

	// Outermost first: request ID, then access logging, then the identity
	// binder so every logged request already carries its ID.
	var handler http.Handler = mux
	handler = auth.Middleware(s.store, s.issuer)(handler)
	handler = s.loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (s *Server) requireUser(h http.HandlerFunc) http.Handler {
	return auth.RequireUser(h)
}

func (s *Server) requireAdmin(h http.HandlerFunc) http.Handler {
	return auth.RequireAdmin(h)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Server.HTTPAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down http server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
