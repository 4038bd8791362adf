package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML config file on top of Default. An empty path only applies
// the environment overrides.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("WIZARD_API_ENDPOINT"); v != "" {
		cfg.Api.Endpoints = strings.Split(v, ",")
	}

	if v := os.Getenv("WIZARD_ACCESS_TOKEN"); v != "" {
		cfg.Api.AccessToken = v
	}

	if v := os.Getenv("WIZARD_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Api.Timeout = d
		}
	}

	if v := os.Getenv("WIZARD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
