package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pageza/foodcourt/backend/config"
	_ "github.com/pageza/foodcourt/backend/docs"
	"github.com/pageza/foodcourt/backend/internal/api"
	"github.com/pageza/foodcourt/backend/internal/middleware"
)

const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the engine with the request middleware, the API routes, the
// swagger UI and the local media directory.
func New(cfg *config.Config, logger zerolog.Logger, svc api.Services, ping api.Pinger, orderLimiter *middleware.RateLimiter) *Server {
	if cfg.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
	)
	router.NoRoute(middleware.NoRoute)
	router.NoMethod(middleware.NoMethod)

	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler()))
	if !cfg.UsesS3() && cfg.MediaDir != "" {
		router.Static(cfg.MediaURL, cfg.MediaDir)
	}

	api.SetupAPI(router, svc, ping, orderLimiter)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
