package main

import (
	"context"
	"trimly/config"
	"trimly/infras/otel"
	"trimly/infras/postgres"
	authRepository "trimly/internal/domains/auth/repository"
	"trimly/shared/logger"

	"github.com/rs/zerolog/log"
)

// Sweeps expired refresh tokens. Meant to run from cron.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	tokenRepo := authRepository.New(db, otel.New(cfg))

	deleted, err := tokenRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sweep expired refresh tokens")
	}

	log.Info().Int64("deleted", deleted).Msg("expired refresh tokens swept")
}
