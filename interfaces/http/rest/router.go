// Package rest wires the HTTP routes.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/interfaces/http/rest/handlers"
	"github.com/Zzzisey/hackson/interfaces/http/rest/middleware"
	"github.com/Zzzisey/hackson/pkg/common"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Auth    *handlers.AuthHandler
	Users   *handlers.UserHandler
	Persons *handlers.PersonHandler
	Graph   *handlers.GraphHandler
	AuthMW  *middleware.AuthMiddleware
	Logger  *zap.Logger

	AllowedOrigins []string
}

// NewRouter builds the chi route table. Route groups carry their auth
// strength: /api/auth and /health are public, the graph network and
// connections routes take optional auth, everything else is strict.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/login-json", deps.Auth.LoginJSON)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(deps.AuthMW.Authenticate)
			r.Get("/me", deps.Users.Me)
			r.Get("/", deps.Users.List)
		})

		r.Route("/persons", func(r chi.Router) {
			r.Use(deps.AuthMW.Authenticate)
			r.Post("/", deps.Persons.Create)
			r.Get("/", deps.Persons.List)
			r.Get("/me", deps.Persons.Me)
			r.Get("/{id}", deps.Persons.Get)
			r.Put("/{id}", deps.Persons.Update)
		})

		r.Route("/graph", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW.Authenticate)
				r.Get("/nodes", deps.Graph.Nodes)
				r.Get("/edges", deps.Graph.Edges)
				r.Get("/nodes/search", deps.Graph.Search)
				r.Get("/nodes/search/optimized", deps.Graph.SearchOptimized)
			})

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW.AuthenticateOptional)
				r.Get("/network", deps.Graph.Network)
				r.Get("/network/optimized", deps.Graph.NetworkOptimized)
				r.Get("/nodes/{id}/connections", deps.Graph.Connections)
			})
		})
	})

	return r
}
