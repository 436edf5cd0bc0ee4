package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/config"
	"github.com/pageza/foodcourt/backend/internal/database"
	"github.com/pageza/foodcourt/backend/internal/logging"
	"github.com/pageza/foodcourt/backend/internal/service"
)

func main() {
	name := flag.String("name", "Administrator", "Display name of the staff account")
	email := flag.String("email", os.Getenv("STAFF_EMAIL"), "Email of the staff account")
	password := flag.String("password", os.Getenv("STAFF_PASSWORD"), "Password of the staff account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Install(logging.New(config.GetEnvironment(), "info", os.Stderr))
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Install(logging.New(cfg.Env, cfg.LogLevel, os.Stderr))

	if *email == "" || len(*password) < 8 {
		log.Fatal().Msg("an email and a password of at least 8 characters are required")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)
	if err := database.RunMigrations(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	user, err := auth.EnsureStaff(ctx, *name, *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create staff account")
	}
	log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("staff account ready")
}
