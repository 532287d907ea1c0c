package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	BaseDir   string `mapstructure:"BASE_DIR"`
	DataDir   string `mapstructure:"DATA_DIR"`
	OutputDir string `mapstructure:"OUTPUT_DIR"`

	// CSVPreserveQuotedSpace keeps leading and trailing whitespace inside
	// quoted CSV fields instead of trimming every field.
	CSVPreserveQuotedSpace bool `mapstructure:"CSV_PRESERVE_QUOTED_SPACE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BASE_DIR", ".")
	v.SetDefault("DATA_DIR", "")
	v.SetDefault("OUTPUT_DIR", "")
	v.SetDefault("CSV_PRESERVE_QUOTED_SPACE", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("BASE_DIR")
	v.BindEnv("DATA_DIR")
	v.BindEnv("OUTPUT_DIR")
	v.BindEnv("CSV_PRESERVE_QUOTED_SPACE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.BaseDir == "" {
		return nil, fmt.Errorf("BASE_DIR must not be empty")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(cfg.BaseDir, "data")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(cfg.BaseDir, "output")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the tool is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
