package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string
	LogLevel    string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Media configuration
	MediaDir     string
	MediaURL     string
	S3BucketName string
	AWSRegion    string
	ImageQuality int

	PhoneDefaultRegion string
	OrderRateLimit     int
}

const defaultJWTSecret = "change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "foodcourt")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "foodcourt.db")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_URL", "")

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("MEDIA_URL", "/media")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("AWS_REGION", "")
	v.SetDefault("IMAGE_QUALITY", 90)

	v.SetDefault("PHONE_DEFAULT_REGION", "KG")
	v.SetDefault("ORDER_RATE_LIMIT", 30)
}

// LoadConfig creates a new Config instance from defaults, an optional .env
// file, environment variables and, outside CI, Docker secrets.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}
	v.AutomaticEnv()

	env, err := environmentFrom(v)
	if err != nil {
		return nil, err
	}
	cfg := fromViper(v)
	cfg.Env = env

	// Load sensitive values based on environment
	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadSecrets(cfg, false)
	case Production:
		loadSecrets(cfg, true)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		ServerHost:         v.GetString("SERVER_HOST"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RedisHost:          v.GetString("REDIS_HOST"),
		RedisPort:          v.GetString("REDIS_PORT"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisURL:           v.GetString("REDIS_URL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		MediaDir:           v.GetString("MEDIA_DIR"),
		MediaURL:           v.GetString("MEDIA_URL"),
		S3BucketName:       v.GetString("S3_BUCKET_NAME"),
		AWSRegion:          v.GetString("AWS_REGION"),
		ImageQuality:       v.GetInt("IMAGE_QUALITY"),
		PhoneDefaultRegion: strings.ToUpper(v.GetString("PHONE_DEFAULT_REGION")),
		OrderRateLimit:     v.GetInt("ORDER_RATE_LIMIT"),
	}
	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	return cfg
}

// loadCIConfig lets the CI pipeline's TEST_* secrets take precedence
func loadCIConfig(cfg *Config) {
	if v := os.Getenv("TEST_DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("TEST_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TEST_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("TEST_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
}

// loadSecrets overrides sensitive values with Docker secrets when present.
// In production every secret file wins over the environment.
func loadSecrets(cfg *Config, production bool) {
	override := func(dst *string, name string) {
		if v := readSecret(name); v != "" {
			*dst = v
		}
	}
	override(&cfg.DBPassword, "db_password")
	override(&cfg.JWTSecret, "jwt_secret")
	override(&cfg.RedisPassword, "redis_password")
	if production {
		override(&cfg.DBUser, "db_user")
		override(&cfg.DBHost, "db_host")
		override(&cfg.DBName, "db_name")
		override(&cfg.RedisURL, "redis_url")
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// PostgresDSN returns the key/value connection string for the configured database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the connection URL used by the migration tool.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}
