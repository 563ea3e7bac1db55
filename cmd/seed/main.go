package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/clinic-roster/internal/config"
	"github.com/spec-kit/clinic-roster/internal/observability"
	"github.com/spec-kit/clinic-roster/internal/persistence"
	"github.com/spec-kit/clinic-roster/internal/repository"
	"github.com/spec-kit/clinic-roster/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	seeder := seed.NewSeeder(
		repository.NewDepartmentRepository(pool, nil),
		repository.NewEmployeeRepository(pool, nil),
		logger,
	)
	if _, err := seeder.Run(ctx); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}
