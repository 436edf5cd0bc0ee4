package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines what each environment must provide
type ConfigRequirements struct {
	// RequireDBPassword demands a password whenever postgres is used.
	RequireDBPassword bool
	// RequireJWTSecret forbids the built-in development secret.
	RequireJWTSecret bool
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {},
		Test:        {},
		CI: {
			RequireDBPassword: true,
			RequireJWTSecret:  true,
		},
		Production: {
			RequireDBPassword: true,
			RequireJWTSecret:  true,
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[cfg.Env]

	var errors []ValidationError

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errors = append(errors, ValidationError{"DB_HOST", "is required for postgres"})
		}
		if cfg.DBName == "" {
			errors = append(errors, ValidationError{"DB_NAME", "is required for postgres"})
		}
		if reqs.RequireDBPassword && cfg.DBPassword == "" {
			errors = append(errors, ValidationError{"DB_PASSWORD", fmt.Sprintf("is required in %s environment", cfg.Env)})
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errors = append(errors, ValidationError{"SQLITE_PATH", "is required for sqlite"})
		}
	default:
		errors = append(errors, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.JWTSecret == "" || (reqs.RequireJWTSecret && cfg.JWTSecret == defaultJWTSecret) {
		errors = append(errors, ValidationError{"JWT_SECRET", fmt.Sprintf("must be set in %s environment", cfg.Env)})
	}
	if cfg.ImageQuality < 1 || cfg.ImageQuality > 100 {
		errors = append(errors, ValidationError{"IMAGE_QUALITY", "must be between 1 and 100"})
	}
	if cfg.OrderRateLimit < 0 {
		errors = append(errors, ValidationError{"ORDER_RATE_LIMIT", "must not be negative"})
	}
	if len(cfg.PhoneDefaultRegion) != 2 {
		errors = append(errors, ValidationError{"PHONE_DEFAULT_REGION", "must be a two letter region code"})
	}

	if len(errors) > 0 {
		msgs := make([]string, len(errors))
		for i, e := range errors {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}
