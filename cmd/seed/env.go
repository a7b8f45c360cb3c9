package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammy-mbugua/portfolio/adapters/persistence"
	"github.com/sammy-mbugua/portfolio/internal/application/usecase/seed"
	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// environment is what every subcommand needs: config, a logger and a seeder bound to
// the Postgres repositories.
type environment struct {
	cfg    config.Config
	log    logger.Logger
	pool   *pgxpool.Pool
	seeder *seed.SeedUseCase
}

func openEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	log := logger.NewZapLogger(cfg.App.Env)

	if cfg.DB.AutoMigrate {
		if err := persistence.RunMigrations(cfg.DB.DSN, log); err != nil {
			return nil, fmt.Errorf("cannot run migrations: %w", err)
		}
	}

	pool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("cannot connect Postgres: %w", err)
	}

	seeder := seed.NewSeedUseCase(seed.Repositories{
		Profile:    persistence.NewPostgresProfileRepo(pool, log),
		Education:  persistence.NewPostgresEducationRepo(pool, log),
		Experience: persistence.NewPostgresExperienceRepo(pool, log),
		Skill:      persistence.NewPostgresSkillRepo(pool, log),
		Project:    persistence.NewPostgresProjectRepo(pool, log),
		Social:     persistence.NewPostgresSocialRepo(pool, log),
		User:       persistence.NewPostgresUserRepo(pool, log),
	}, log)

	return &environment{cfg: cfg, log: log, pool: pool, seeder: seeder}, nil
}

func (e *environment) Close() {
	e.pool.Close()
	_ = e.log.Sync()
}
