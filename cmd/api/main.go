package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pageza/foodcourt/backend/config"
	"github.com/pageza/foodcourt/backend/internal/api"
	"github.com/pageza/foodcourt/backend/internal/database"
	"github.com/pageza/foodcourt/backend/internal/logging"
	"github.com/pageza/foodcourt/backend/internal/middleware"
	"github.com/pageza/foodcourt/backend/internal/server"
	"github.com/pageza/foodcourt/backend/internal/service"
)

// @title Foodcourt API
// @version 1.0
// @description Menu catalog and order intake for a food delivery service.
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Install(logging.New(config.GetEnvironment(), "info", os.Stderr))
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(cfg.Env, cfg.LogLevel, os.Stdout)
	logging.Install(logger)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()
	if err := database.RunMigrations(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	images, err := newImageService(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up image storage")
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	svc := api.NewServices(db, auth, images, cfg.PhoneDefaultRegion)

	srv := server.New(cfg, logger, svc, func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}, newOrderLimiter(cfg))

	log.Info().Str("env", string(cfg.Env)).Str("db_driver", cfg.DBDriver).Msg("starting foodcourt api")
	if err := srv.Start(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func newImageService(ctx context.Context, cfg *config.Config) (*service.ImageService, error) {
	if !cfg.UsesS3() {
		log.Info().Str("dir", cfg.MediaDir).Msg("storing images on local disk")
		return service.NewImageService(service.NewLocalStore(cfg.MediaDir, cfg.MediaURL), cfg.ImageQuality), nil
	}
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("bucket", cfg.S3BucketName).Msg("storing images in S3")
	return service.NewImageService(service.NewS3Store(s3Config), cfg.ImageQuality), nil
}

// newOrderLimiter returns nil when Redis is unreachable or limiting is off,
// which leaves order submission unthrottled.
func newOrderLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.OrderRateLimit == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, order rate limiting disabled")
		return nil
	}
	return middleware.NewOrderRateLimiter(client, cfg.OrderRateLimit)
}
