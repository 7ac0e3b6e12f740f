// Command seed is the one-shot bootstrap seeder. It ensures exactly one
// admin account exists before the service is first used and is run at
// deployment time, independently of the live request path.
package main

import (
	"context"
	"os"
	"time"

	"github.com/presensia/employee-system/internal/core/service"
	"github.com/presensia/employee-system/internal/infrastructure/config"
	"github.com/presensia/employee-system/internal/infrastructure/db/postgres"
	"github.com/presensia/employee-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Error().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}
	defer pool.Close()

	seeder := service.NewSeeder(postgres.NewUserRepository(pool), log)
	created, err := seeder.Seed(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to initiate admin user")
		os.Exit(1)
	}

	if created {
		log.Info().Msg("administrator created")
	}
}
