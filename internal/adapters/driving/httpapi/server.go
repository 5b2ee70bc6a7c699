// Package httpapi exposes the public site API over HTTP: the chatbot
// endpoint, site content routes and the admin dashboard routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/arah-infotech/sitebot/internal/core/ports/driving"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// Default server parameters.
const (
	DefaultAddr     = ":5000"
	shutdownTimeout = 10 * time.Second
	readTimeout     = 15 * time.Second
	// Chat replies wait on the completion provider, so writes get a
	// generous budget.
	writeTimeout = 90 * time.Second
)

// Config holds HTTP server settings.
type Config struct {
	Addr           string
	AllowedOrigins []string
}

// Server serves the site API. The chatbot route stays available while
// website knowledge loads in the background; degraded states surface as
// fixed fallback replies rather than errors.
type Server struct {
	cfg      Config
	chat     driving.ChatService
	content  driving.ContentService
	auth     driving.AuthService
	validate *validator.Validate
}

// NewServer creates an API server over the injected services.
func NewServer(cfg Config, chat driving.ChatService, content driving.ContentService, auth driving.AuthService) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return &Server{
		cfg:      cfg,
		chat:     chat,
		content:  content,
		auth:     auth,
		validate: validator.New(),
	}
}

// Handler builds the route tree. Exposed so tests can drive the full
// router without a listening socket.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/api/health", s.handleHealth)

	r.Post("/api/chatbot", s.handleChat)

	r.Post("/api/admin/login", s.handleLogin)

	r.Route("/api/careers", func(r chi.Router) {
		r.Get("/", s.handleListCareers)
		r.Get("/{id}", s.handleGetCareer)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateCareer)
			r.Put("/{id}", s.handleUpdateCareer)
			r.Delete("/{id}", s.handleDeleteCareer)
		})
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.handleListProducts)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateProduct)
			r.Put("/{id}", s.handleUpdateProduct)
			r.Delete("/{id}", s.handleDeleteProduct)
		})
	})

	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", s.handleSubmitContact)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListContacts)
			r.Patch("/{id}/read", s.handleMarkContactRead)
			r.Delete("/{id}", s.handleDeleteContact)
		})
	})

	r.Route("/api/applications", func(r chi.Router) {
		r.Post("/", s.handleSubmitApplication)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListApplications)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleRoot is the liveness page served at the site root.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "arah-infotech-api",
	})
}

// handleHealth reports service health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// requestLogger logs each request line at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
