package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type           string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname       string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	Name           string `envconfig:"DB_NAME" default:"poolbalance.db"`
	User           string `envconfig:"DB_USER" default:"admin"`
	Password       string `envconfig:"DB_PASS" default:"adminpass"`
	ConnectRetries uint64 `envconfig:"DB_CONNECT_RETRIES" default:"5"`
}

type svcConfig struct {
	Address         string        `envconfig:"POOLBALANCE_ADDRESS" default:":8080"`
	LogLevel        string        `envconfig:"POOLBALANCE_LOG_LEVEL" default:"info"`
	NotesLanguage   string        `envconfig:"POOLBALANCE_NOTES_LANGUAGE" default:"es"`
	CORSOrigins     []string      `envconfig:"POOLBALANCE_CORS_ORIGINS" default:"*"`
	OtelEnabled     bool          `envconfig:"POOLBALANCE_OTEL_ENABLED" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"POOLBALANCE_SHUTDOWN_TIMEOUT" default:"5s"`
}

// New reads the configuration from the process environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
