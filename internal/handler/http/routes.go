package http

import (
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the application router. Every routing entry declares the
// minimum role it requires; the authorize middleware is the single place
// where that requirement is enforced.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// open surface
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.RoleAnonymous))
		r.Post("/api/accounts/register/", h.register)
		r.Post("/api/accounts/token/", h.token)
		r.Post("/api/accounts/token/refresh/", h.refreshToken)
		r.Get("/api/version/", h.getServerVersion)
	})

	// authenticated surface
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.RoleAuthenticated))
		r.Post("/api/accounts/logout/", h.logout)
		r.Get("/api/accounts/users/{id}", h.getUser)
		r.Put("/api/accounts/users/{id}", h.updateUser)
		r.Delete("/api/accounts/users/{id}", h.deleteUser)
		r.Post("/api/forms/questions/", h.createQuestion)
	})

	// admin surface
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.RoleAdmin))
		r.Post("/api/accounts/users/", h.createUser)
		r.Get("/api/accounts/users/", h.listUsers)
		r.Get("/api/forms/questions/", h.listQuestions)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
