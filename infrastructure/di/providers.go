// Package di assembles the application object graph with google/wire.
// wire.go holds the injector definition; wire_gen.go is the generated output
// and is committed so builds do not require the wire tool.
package di

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/infrastructure/config"
	graphstore "github.com/Zzzisey/hackson/infrastructure/persistence/neo4j"
	"github.com/Zzzisey/hackson/infrastructure/persistence/sqlite"
	"github.com/Zzzisey/hackson/interfaces/http/rest"
	"github.com/Zzzisey/hackson/interfaces/http/rest/handlers"
	"github.com/Zzzisey/hackson/interfaces/http/rest/middleware"
	"github.com/Zzzisey/hackson/pkg/auth"
)

// Container holds the assembled application.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router http.Handler

	userStore   *sqlite.UserStore
	graphClient *graphstore.Client
}

// Shutdown releases store handles and flushes the logger.
func (c *Container) Shutdown(ctx context.Context) {
	if err := c.graphClient.Close(ctx); err != nil {
		c.Logger.Warn("graph client close failed", zap.Error(err))
	}
	if err := c.userStore.Close(); err != nil {
		c.Logger.Warn("user store close failed", zap.Error(err))
	}
	c.Logger.Sync()
}

// ProvideLogger builds a zap logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zapCfg.Build()
}

// ProvideTokenService builds the HS256 token service.
func ProvideTokenService(cfg *config.Config) (*auth.TokenService, error) {
	return auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
}

// ProvideUserStore opens the relational account store.
func ProvideUserStore(cfg *config.Config, logger *zap.Logger) (*sqlite.UserStore, error) {
	return sqlite.Open(cfg.SQLitePath, logger)
}

// ProvideGraphClient creates the Neo4j client and verifies connectivity.
func ProvideGraphClient(cfg *config.Config, logger *zap.Logger) (*graphstore.Client, error) {
	client, err := graphstore.NewClient(graphstore.Config{
		URI:                   cfg.Neo4jURI,
		Username:              cfg.Neo4jUsername,
		Password:              cfg.Neo4jPassword,
		Database:              cfg.Neo4jDatabase,
		MaxConnectionPoolSize: 50,
		ConnectionTimeout:     30 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.VerifyConnectivity(ctx); err != nil {
		client.Close(context.Background())
		return nil, err
	}

	logger.Info("graph store connected", zap.String("uri", cfg.Neo4jURI))
	return client, nil
}

// ProvideAuthMiddleware builds the auth middleware with the configured rate
// limit.
func ProvideAuthMiddleware(tokens *auth.TokenService, users ports.UserStore, cfg *config.Config, logger *zap.Logger) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens, users, cfg.RateLimitPerMinute, logger)
}

// ProvideRouter builds the HTTP route table.
func ProvideRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	personHandler *handlers.PersonHandler,
	graphHandler *handlers.GraphHandler,
	authMW *middleware.AuthMiddleware,
	logger *zap.Logger,
) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Auth:           authHandler,
		Users:          userHandler,
		Persons:        personHandler,
		Graph:          graphHandler,
		AuthMW:         authMW,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})
}

// ProvideContainer assembles the final container.
func ProvideContainer(
	cfg *config.Config,
	logger *zap.Logger,
	router http.Handler,
	userStore *sqlite.UserStore,
	graphClient *graphstore.Client,
) *Container {
	return &Container{
		Config:      cfg,
		Logger:      logger,
		Router:      router,
		userStore:   userStore,
		graphClient: graphClient,
	}
}
