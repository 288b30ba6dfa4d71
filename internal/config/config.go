// Package config loads pricer configuration from an optional YAML file,
// with environment variable overrides layered on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// DefaultsConfig holds the parameter values used when the CLI receives no
// positional arguments (or an argument that fails to parse).
type DefaultsConfig struct {
	Spot   float64 `yaml:"spot"`
	Strike float64 `yaml:"strike"`
	Rate   float64 `yaml:"rate"`
	Sigma  float64 `yaml:"sigma"`
	Expiry float64 `yaml:"expiry"`
}

// Params converts the configured defaults into pricing parameters.
func (d DefaultsConfig) Params() pricing.Params {
	return pricing.Params{S: d.Spot, K: d.Strike, R: d.Rate, Sigma: d.Sigma, T: d.Expiry}
}

// ServerConfig holds REST mode settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DataConfig holds market data provider settings for -symbol mode.
type DataConfig struct {
	Provider string `yaml:"provider"` // "polygon" or "synthetic"
	APIKey   string `yaml:"api_key"`
}

type Config struct {
	Defaults  DefaultsConfig `yaml:"defaults"`
	Server    ServerConfig   `yaml:"server"`
	Data      DataConfig     `yaml:"data"`
	Verbosity int            `yaml:"verbosity"`
}

// Default returns the built-in configuration: the canonical ATM example
// parameters (S=100, K=100, r=5%, sigma=20%, T=1y) and a synthetic data
// provider.
func Default() Config {
	return Config{
		Defaults: DefaultsConfig{
			Spot:   100,
			Strike: 100,
			Rate:   0.05,
			Sigma:  0.2,
			Expiry: 1.0,
		},
		Server:    ServerConfig{Port: ":8080"},
		Data:      DataConfig{},
		Verbosity: int(logger.Info),
	}
}

// LoadEnv loads environment variables from a .env file in the working
// directory, if one exists.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Debugf(".env file not found or failed to load")
	} else {
		logger.Infof(".env loaded successfully")
	}
}

// Load builds the effective configuration: built-in defaults, overlaid by
// the YAML file at path (when path is non-empty), overlaid by environment
// variables. A missing or malformed YAML file is an error; a malformed
// numeric environment variable is skipped with a warning.
//
// POLYGON_API_KEY always supplies the API key, but selects the polygon
// provider only when no provider was configured; an explicit
// `data.provider` in the YAML file wins over the env var.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	envFloat("PRICER_RATE", &cfg.Defaults.Rate)
	envFloat("PRICER_SIGMA", &cfg.Defaults.Sigma)
	if v := os.Getenv("PRICER_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Data.APIKey = v
		// Auto-select polygon only when no provider was configured; an
		// explicit choice in the YAML file is not overridden.
		if cfg.Data.Provider == "" {
			cfg.Data.Provider = "polygon"
		}
	}
}

func envFloat(name string, dst *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Errorf("ignoring %s=%q: not a number", name, v)
		return
	}
	*dst = f
}
