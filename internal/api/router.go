package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"bankmock/internal/token"
)

// NewRouter wires middleware and routes. The account lookup is public by
// contract; everything else under /api except login requires a bearer
// token.
func NewRouter(h *Handler, tokens *token.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", h.Login)
		api.Get("/accounts/{accountID}", h.GetAccount)

		api.Group(func(priv chi.Router) {
			priv.Use(RequireAuth(tokens))
			priv.Get("/me", h.Me)
			priv.Get("/me/sync", h.StartSync)
			priv.Get("/me/sync/progress", h.SyncProgress)
			priv.Post("/remit", h.Remit)
		})
	})

	return r
}
