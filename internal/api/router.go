package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/theopenlane/mailaudit/internal/scanner"
)

// RouterConfig carries the dependencies and limits for the API router
type RouterConfig struct {
	// MaxBodySize caps the scan request body in bytes
	MaxBodySize int64
	// ScanTimeout bounds a whole scan request, zero for no bound
	ScanTimeout time.Duration
	// NewScanner overrides the coordinator factory, used by tests
	NewScanner func(opts ...scanner.ScanOption) (*scanner.Scanner, error)
}

// NewRouter creates a chi router with all endpoints and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	factory := cfg.NewScanner
	if factory == nil {
		factory = scanner.New
	}

	h := &Handler{
		maxBodySize: cfg.MaxBodySize,
		scanTimeout: cfg.ScanTimeout,
		newScanner:  factory,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", h.handleHealth)
		r.Post("/scan", h.handleScan)
	})

	return r
}
