package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GOALNOTE"

type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	DBFile  string       `mapstructure:"db_file"`
	Year    int          `mapstructure:"year"`
	Log     LoggerConfig `mapstructure:"log"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DBPath is the sqlite file holding both data blobs.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoadConfig reads defaults, an optional .env file and GOALNOTE_* variables.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "goalnote"))
	v.SetDefault("db_file", "goalnote.db")
	v.SetDefault("year", time.Now().Year())

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

func validateConfig(cfg *Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if cfg.DBFile == "" {
		return fmt.Errorf("db_file is required")
	}
	if cfg.Year < 1 || cfg.Year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got %d", cfg.Year)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Log.Format)
	}

	return nil
}
