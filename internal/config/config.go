package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "mesflow"

const (
	insecureDefaultSecret = "change_me_in_production"
	minSecretKeyLength    = 32
)

type Config struct {
	// Address is the listen address of the HTTP server.
	Address string `default:":8080"`

	// DBPath points at the SQLite database file. Parent directories are created on open.
	DBPath string `split_words:"true" default:"data/mesflow.db"`

	// SecretKey signs auth tokens and seals cookies. Outside DevMode it must
	// be at least 32 characters and not the default.
	SecretKey string `split_words:"true" default:"change_me_in_production"`

	TemplatesDir string `split_words:"true" default:"internal/templates"`
	StaticDir    string `split_words:"true" default:"web/static"`

	// TZ is the IANA zone used for "today" in delay detection and the monthly chart.
	TZ string `default:"UTC"`

	DevMode      bool   `split_words:"true"`
	CookieSecure bool   `split_words:"true"`
	LogLevel     string `split_words:"true" default:"info"`

	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

// Load reads an optional .env file and then the MESFLOW_* environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(filepath.Clean(file)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var config Config
	if err := envconfig.Process(envPrefix, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (config *Config) validate() error {
	if config.SecretKey == "" {
		return errors.New("MESFLOW_SECRET_KEY must not be empty")
	}
	if !config.DevMode {
		if config.SecretKey == insecureDefaultSecret {
			return errors.New("MESFLOW_SECRET_KEY must be set outside of dev mode")
		}
		if len(config.SecretKey) < minSecretKeyLength {
			return fmt.Errorf("MESFLOW_SECRET_KEY must be at least %d characters", minSecretKeyLength)
		}
	}
	if config.ShutdownTimeout <= 0 {
		return errors.New("MESFLOW_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Location resolves TZ, falling back to UTC for unknown zones.
func (config *Config) Location() (*time.Location, bool) {
	location, err := time.LoadLocation(config.TZ)
	if err != nil {
		return time.UTC, false
	}
	return location, true
}
