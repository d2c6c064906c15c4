package pools

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the profile endpoints under the /pools prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/pools", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
	})
}
