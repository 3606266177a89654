package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/db"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/token"
	"server/internal/workflow"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if cfg.SeedOnStart {
		if err := db.EnsureSchema(ctx, dbpool); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		if err := db.Seed(ctx, dbpool, cfg.AdminPassword, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	donations := repo.NewDonationRepository(runner, runner)
	ngos := repo.NewNGORepository(runner)
	needs := repo.NewNeedRepository(runner)
	users := repo.NewUserRepository(runner)

	engine := workflow.NewEngine(donations, ngos, needs, logger)
	tokens := token.New(cfg.JWTSecret, cfg.TokenTTL)

	app := &handlers.App{
		Workflow:    engine,
		Users:       users,
		SQL:         runner,
		Tokens:      tokens,
		Geo:         geo,
		Logger:      logger,
		DefaultCity: cfg.DefaultCity,
	}

	router := httpapi.NewRouter(app, cfg, tokens)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); isFatalServeError(err) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// isFatalServeError distinguishes real listen failures from the
// http.ErrServerClosed that a graceful Shutdown makes Start return.
func isFatalServeError(err error) bool {
	return err != nil && !errors.Is(err, http.ErrServerClosed)
}
