// Package config loads engine configuration: compiled-in defaults, an
// optional TOML file, then environment overrides, in that order.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var SampleConfig string

// Endpoints overrides the provider base URLs, mainly for tests and mirrors.
type Endpoints struct {
	ReceitaWS string `toml:"receitaws"`
	BrasilAPI string `toml:"brasilapi"`
	CNPJWS    string `toml:"cnpjws"`
	ViaCEP    string `toml:"viacep"`
	OpenCEP   string `toml:"opencep"`
	DNS       string `toml:"dns"`
}

// Config is the full engine configuration.
type Config struct {
	Addr                   string    `toml:"addr"`
	Concurrency            int       `toml:"concurrency"`
	ProviderTimeoutSeconds int       `toml:"provider_timeout_seconds"`
	CooldownSeconds        int       `toml:"cooldown_seconds"`
	Endpoints              Endpoints `toml:"endpoints"`
}

// ProviderTimeout is the per-attempt budget for one provider call.
func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

// Cooldown is how long a rate-limited provider sits out of a bulk run.
func (c Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

func defaults() Config {
	return Config{
		Addr:                   ":8080",
		Concurrency:            5,
		ProviderTimeoutSeconds: 10,
		CooldownSeconds:        30,
	}
}

// Load builds the configuration. path may be empty, in which case the
// CONSULTA_CONFIG file (if set) and environment variables apply. A missing
// file is only an error when its path was given explicitly.
func Load(path string) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("CONSULTA_CONFIG")
		explicit = path != ""
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// defaults stand
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if addr := os.Getenv("CONSULTA_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if raw := os.Getenv("CONSULTA_CONCURRENCY"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid CONSULTA_CONCURRENCY %q", raw)
		}
		cfg.Concurrency = n
	}
	if raw := os.Getenv("CONSULTA_PROVIDER_TIMEOUT_SECONDS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid CONSULTA_PROVIDER_TIMEOUT_SECONDS %q", raw)
		}
		cfg.ProviderTimeoutSeconds = n
	}

	return cfg, nil
}
