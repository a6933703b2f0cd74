package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stauntonj/rently/internal/http/auth"
	"github.com/stauntonj/rently/internal/http/lease"
	"github.com/stauntonj/rently/internal/http/payment"
	"github.com/stauntonj/rently/internal/http/reconcile"
)

func New(
	jwtSecret string,
	leasesV1 *lease.Handler,
	paymentsV1 *payment.Handler,
	reconcileV1 *reconcile.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Bearer(jwtSecret))

		r.Route("/leases", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			leasesV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/reconcile", reconcileV1.Routes)
	})

	return router
}
