package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/criticalmaps/internal/server/middleware"
)

// RouterConfig собирает зависимости HTTP роутера
type RouterConfig struct {
	Logger  *slog.Logger
	API     *APIHandler
	Health  *HealthHandler
	Limiter *middleware.RateLimiter
}

// NewRouter builds the server routes:
//
//	GET  /healthz - health check
//	GET  /        - current positions and chat
//	POST /        - report a position and/or chat messages
//
// POST is rate limited when cfg.Limiter is set.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, "/healthz"))

	r.Get("/healthz", cfg.Health.Health)
	r.Get("/", cfg.API.Get)

	if cfg.Limiter != nil {
		r.With(middleware.RateLimit(cfg.Limiter)).Post("/", cfg.API.Post)
	} else {
		r.Post("/", cfg.API.Post)
	}

	return r
}
