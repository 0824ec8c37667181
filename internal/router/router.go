package router

import (
	"net/http"

	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/handler"
	"github.com/pixelsmith/contactrelay/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	// API v1 routes
	mux.HandleFunc("GET /api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Pixelsmith site API v1","version":"0.1.0"}`))
	})

	// Contact relay (public, rate limited per IP)
	contactRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Limit:  cfg.RateLimiting.ContactLimit,
		Window: cfg.RateLimiting.ContactWindow,
		KeyFn:  middleware.IPKey,
	})
	mux.Handle("POST /api/v1/contact", contactRateLimit(http.HandlerFunc(h.SubmitContact)))

	// Static site content
	mux.HandleFunc("GET /api/v1/services", h.ListServices)
	mux.HandleFunc("GET /api/v1/services/{slug}", h.GetService)
	mux.HandleFunc("GET /api/v1/faqs", h.ListFAQs)
	mux.HandleFunc("GET /api/v1/projects", h.ListProjects)
	mux.HandleFunc("GET /api/v1/projects/{slug}", h.GetProject)

	// Apply middleware stack
	var root http.Handler = mux

	// CORS for the site frontend
	root = mw.CORS(cfg.CORS.AllowedOrigins)(root)

	// Request logging
	root = mw.Logger(root)

	// Timing
	root = mw.Timing(root)

	// Request ID
	root = mw.RequestID(root)

	// Panic recovery (outermost)
	root = mw.Recover(root)

	return root
}
