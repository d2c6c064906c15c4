package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculation endpoints onto the given router
// under the /calculate prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculate", func(r chi.Router) {
		r.Post("/", h.Calculate)
		r.Post("/batch", h.Batch)
	})
}
