package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/config"
	"github.com/pageza/foodcourt/backend/internal/database"
	"github.com/pageza/foodcourt/backend/internal/logging"
)

func main() {
	down := flag.Int("down", 0, "Roll back this many migrations instead of migrating up")
	version := flag.Bool("version", false, "Print the applied schema version and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Install(logging.New(config.GetEnvironment(), "info", os.Stderr))
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Install(logging.New(cfg.Env, cfg.LogLevel, os.Stderr))

	if cfg.DBDriver != "postgres" {
		log.Fatal().Str("driver", cfg.DBDriver).Msg("SQL migrations only apply to postgres; sqlite is auto-migrated at startup")
	}

	mg, err := database.NewMigrator(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create migrator")
	}
	defer func() {
		if err := mg.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close migrator")
		}
	}()

	switch {
	case *version:
	case *down > 0:
		if err := mg.Down(*down); err != nil {
			log.Fatal().Err(err).Msg("rollback failed")
		}
		log.Info().Int("steps", *down).Msg("rolled back migrations")
	default:
		if err := mg.Up(); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	}

	v, dirty, ok, err := mg.Version()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read schema version")
	}
	if !ok {
		fmt.Println("schema version: none")
		return
	}
	fmt.Printf("schema version: %d (dirty: %t)\n", v, dirty)
}
