package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. The middleware chain is trace-id → logging →
// recoverer (panics become 500s, never a crashed process) → per-request
// timeout, with session authentication applied only to the protected group.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Patch("/unsubscribe", h.unsubscribe)
	})

	// routes requiring a resolved account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profile", h.profile)
		r.Patch("/check", h.check)
		r.Patch("/uncheck", h.uncheck)
		r.Post("/upload", h.upload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
