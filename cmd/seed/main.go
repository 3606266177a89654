// Command seed creates the schema and seed data without starting the API.
// Useful for deployments that run with SEED_ON_START=false.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"server/internal/db"
	"server/internal/infra"
)

func main() {
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

	if err := db.EnsureSchema(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}
	if err := db.Seed(ctx, dbpool, cfg.AdminPassword, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}
	logger.Info().Msg("schema ensured and seed data applied")
}
