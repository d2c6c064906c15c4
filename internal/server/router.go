package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"poolbalance/internal/calculator"
	"poolbalance/internal/handlers"
	"poolbalance/internal/observability"
	"poolbalance/internal/pools"
)

// Dependencies are the domain handlers mounted under /api.
type Dependencies struct {
	Calculator  *calculator.Handler
	Pools       *pools.Handler
	CORSOrigins []string
}

func NewRouter(deps Dependencies) http.Handler {

	r := chi.NewRouter()

	r.Use(cors.Handler(corsOptions(deps.CORSOrigins)))
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.APIRoot)

		if deps.Calculator != nil {
			calculator.RegisterRoutes(r, deps.Calculator)
		}
		if deps.Pools != nil {
			pools.RegisterRoutes(r, deps.Pools)
		}
	})

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	allowCredentials := true
	for _, o := range origins {
		// Browsers refuse credentials on a wildcard origin.
		if o == "*" {
			allowCredentials = false
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{observability.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	}
}
