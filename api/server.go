package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/chameleon-site/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(backend Backend, c map[string]string) (Server, error) {
	if backend.Vibes == nil {
		return Server{}, fmt.Errorf("vibe cache is required")
	}
	if backend.Assets == nil {
		return Server{}, fmt.Errorf("asset store is required")
	}

	port := config.GetString(c, "PORT", "3001")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(backend, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(backend Backend, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	production := config.IsProduction(router.config)
	acceptedOrigins := config.GetStringSlice(router.config, "ACCEPTED_ORIGINS", []string{"http://localhost:5173"})
	perMinute := config.GetInt(router.config, "RATE_LIMIT_PER_MINUTE", 100)
	trustedProxies := config.GetStringSlice(router.config, "TRUSTED_PROXIES", nil)

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(RequestLoggingMiddleware(log.With().Str("handlerName", "http").Logger()))
	chiRouter.Use(RecoveryMiddleware(production))
	chiRouter.Use(SecurityHeadersMiddleware(production))
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins, production))
	chiRouter.Use(corsMiddleware(acceptedOrigins))
	chiRouter.Use(RateLimitMiddleware(perMinute, []string{"/health"}, trustedProxies, production))

	// Initialize all handlers
	handlers := initializeHandlers(backend, router.startupTime, production)

	// Admin auth is enabled only when a signing secret is configured
	var auth *authMiddleware
	if secret := config.GetString(router.config, "ADMIN_JWT_SECRET", ""); secret != "" {
		m := newAuthMiddleware(secret, production)
		auth = &m
	}

	responder := NewResponder(log.With().Str("handlerName", "router").Logger(), production)
	setupRoutes(chiRouter, handlers, auth, responder)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
