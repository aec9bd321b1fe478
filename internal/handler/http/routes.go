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
	router.Use(withSecurityHeaders)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/version", h.version)

	router.Route("/users", func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/login", h.logIn)
		r.Get("/", h.listUsers)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getUser)

			// the token may come from a cookie, a bearer header or the body
			r.With(h.withToken).Put("/", h.updateUser)
			r.With(h.withToken).Delete("/", h.deleteUser)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
