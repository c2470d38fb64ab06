//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/application/services"
	"github.com/Zzzisey/hackson/infrastructure/config"
	graphstore "github.com/Zzzisey/hackson/infrastructure/persistence/neo4j"
	"github.com/Zzzisey/hackson/infrastructure/persistence/sqlite"
	"github.com/Zzzisey/hackson/interfaces/http/rest/handlers"
)

// InitializeContainer builds the full application object graph.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(
		ProvideLogger,
		ProvideTokenService,

		ProvideUserStore,
		wire.Bind(new(ports.UserStore), new(*sqlite.UserStore)),
		ProvideGraphClient,
		graphstore.NewPersonRepository,
		wire.Bind(new(ports.PersonRepository), new(*graphstore.PersonRepository)),

		services.NewAuthService,
		services.NewGraphService,

		ProvideAuthMiddleware,
		handlers.NewAuthHandler,
		handlers.NewUserHandler,
		handlers.NewPersonHandler,
		handlers.NewGraphHandler,
		ProvideRouter,

		ProvideContainer,
	)
	return nil, nil
}
