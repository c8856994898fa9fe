package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-pass-auth/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/authentication/login", h.login)
		r.Put("/users", h.updateUser)
		r.Get("/version", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// anonymous callers may register, but only with RoleUser
	router.With(h.optionalAuth).Post("/users", h.createUser)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/authentication/logout", h.logout)
		r.Get("/authentication/me", h.me)
		r.With(h.requireRole(models.RoleAdministrator)).Delete("/users", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
