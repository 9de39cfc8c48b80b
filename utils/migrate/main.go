package main

import (
	"github.com/baetin/monsfer-api/src/config"
	"github.com/baetin/monsfer-api/src/db"
	"github.com/baetin/monsfer-api/src/logger"
	"github.com/baetin/monsfer-api/src/seed"
)

// Synchronizes the schema and seeds the default palette without starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close(database)

	// Migrate schema if not exists
	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	created, err := seed.Seed(database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed defaults")
	}
	log.Info().Int("created", created).Msg("schema synchronized")
}
