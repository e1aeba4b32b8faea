// league/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	leagueapi "github.com/openfooty/league-api/league/api"
	"github.com/openfooty/league-api/league/auth"
	"github.com/openfooty/league-api/league/service"
	"github.com/openfooty/league-api/league/store"
	"github.com/openfooty/league-api/shared/api"
	"github.com/openfooty/league-api/shared/config"
	"github.com/openfooty/league-api/shared/metrics"
	mongodbu "github.com/openfooty/league-api/shared/mongodb"
	redisu "github.com/openfooty/league-api/shared/redis"
)

func main() {
	// --- 1. Load Configuration ---
	cfg, err := config.LoadLeagueServiceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := log.Logger
	if cfg.Environment == "development" {
		logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	// --- 3. Connect to Redis ---
	redisClient, err := redisu.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing Redis client")
		}
	}()

	// --- 4. Initialize Data Stores ---
	teamStore := store.NewTeamStore(mongoClient.Collection(cfg.MongoDBTeamsCollection))
	fixtureStore := store.NewFixtureStore(mongoClient.Collection(cfg.MongoDBFixturesCollection))
	userStore := store.NewUserStore(mongoClient.Collection(cfg.MongoDBUsersCollection))
	adminStore := store.NewAdminStore(mongoClient.Collection(cfg.MongoDBAdminsCollection))
	cacheStore := store.NewCacheStore(redisClient, cfg.CacheTTL)

	// --- 5. Ensure Indexes Exist ---
	for name, ensure := range map[string]func(context.Context) error{
		"teams":  teamStore.EnsureIndexes,
		"users":  userStore.EnsureIndexes,
		"admins": adminStore.EnsureIndexes,
	} {
		if err := ensure(context.Background()); err != nil {
			logger.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	// --- 6. Initialize Business Logic Services ---
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	accountService := service.NewAccountService(userStore, adminStore, tokens, cfg.BcryptCost, logger)
	teamService := service.NewTeamService(teamStore, fixtureStore, cacheStore, logger)
	fixtureService := service.NewFixtureService(fixtureStore, teamStore, cacheStore, cfg.BaseURL, logger)

	// --- 7. Initialize API Handlers ---
	handlers := leagueapi.NewHandlers(accountService, teamService, fixtureService, tokens, cfg.RequestTimeout, logger)

	// --- 8. Setup HTTP Server and Register Routes ---
	m := metrics.New()
	baseServer := api.NewBaseServer(cfg.ListenAddr, logger)
	baseServer.Router.Use(m.Middleware)
	baseServer.Router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	handlers.RegisterRoutes(baseServer.Router)

	// --- 9. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("HTTP server failed to start")
		}
	}()

	// --- 10. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server graceful shutdown failed")
	}
	logger.Info().Msg("server gracefully stopped")
}
