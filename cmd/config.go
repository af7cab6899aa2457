package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"orderboard/internal/adapters/out/gormdb"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backings selectable through STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = gormdb.DriverPostgres
	StoreMySQL    = gormdb.DriverMySQL
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"3000"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	DBDsn       string `env:"DB_DSN"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSslMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	StaticDir   string   `env:"STATIC_DIR"`

	SSEBuffer         int    `env:"SSE_BUFFER" envDefault:"64"`
	HeartbeatSchedule string `env:"HEARTBEAT_SCHEDULE" envDefault:"*/15 * * * * *"`
	StatsSchedule     string `env:"STATS_SCHEDULE" envDefault:"0 * * * * *"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads an optional .env file from the working directory and then
// parses the environment. Variables already set in the environment win over
// the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be expressed as env defaults.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres, StoreMySQL:
		if c.DSN() == "" {
			return fmt.Errorf("STORE_DRIVER=%s requires DB_DSN or DB_NAME", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.SSEBuffer <= 0 {
		return fmt.Errorf("SSE_BUFFER must be positive, got %d", c.SSEBuffer)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DSN returns DB_DSN when set, otherwise a data source name assembled from
// the DB_* parts for the selected driver. Empty when neither is configured.
func (c Config) DSN() string {
	if c.DBDsn != "" {
		return c.DBDsn
	}
	if c.DBName == "" {
		return ""
	}

	switch c.StoreDriver {
	case StorePostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
	case StoreMySQL:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	default:
		return ""
	}
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
