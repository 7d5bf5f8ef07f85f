package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"wholesale_go/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Catalog sources
const (
	SourceBundled = "bundled"
	SourceFile    = "file"
	SourceSQLite  = "sqlite"
)

const (
	DefaultConfigPath = "configs/config.yaml"
	DefaultLogLevel   = "warn"
)

// Config holds every application setting.
// After LoadConfig, environment variables override what the file says.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Catalog struct {
		Source string `yaml:"source"`  // bundled, file or sqlite
		Path   string `yaml:"path"`    // YAML market file when source is file
		DBPath string `yaml:"db_path"` // SQLite database when source is sqlite
	} `yaml:"catalog"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"` // rotated log file, empty for stderr only
	} `yaml:"logging"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and parses path. A missing file is not an error; defaults apply.
// A .env file in the working directory is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	overrideWithEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "wholesale-estimator"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = SourceBundled
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBundled:
	case SourceFile:
		if c.Catalog.Path == "" {
			return &domain.ConfigError{Field: "catalog.path", Err: errors.New("required when source is file")}
		}
	case SourceSQLite:
		if c.Catalog.DBPath == "" {
			return &domain.ConfigError{Field: "catalog.db_path", Err: errors.New("required when source is sqlite")}
		}
	default:
		return &domain.ConfigError{Field: "catalog.source", Err: fmt.Errorf("unknown source %q", c.Catalog.Source)}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &domain.ConfigError{Field: "logging.level", Err: fmt.Errorf("unknown level %q", c.Logging.Level)}
	}

	return nil
}

// overrideWithEnv replaces settings with environment variables that are set
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("WHOLESALE_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("WHOLESALE_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("WHOLESALE_DB_PATH"); v != "" {
		cfg.Catalog.DBPath = v
	}
	if v := os.Getenv("WHOLESALE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WHOLESALE_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
