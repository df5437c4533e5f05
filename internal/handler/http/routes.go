package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// identity preload runs on every request, before any handler logic
	router.Use(h.withCurrentUser)

	router.Get("/", h.index)

	router.With(h.RequireUser).Get("/api/user", h.getCurrentUser)

	router.Route("/auth", func(r chi.Router) {
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	return router
}
