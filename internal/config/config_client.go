// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the API client used by the CLI.
type ClientConfig struct {
	// ServerURL is the base URL of the ad board server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type clientEnvConfig struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the explicit overrides (typically
// taken from CLI flags). Zero fields of overrides are ignored.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL:      "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
	}

	var envCfg clientEnvConfig
	if err := parseEnv(&envCfg); err != nil {
		return nil, err
	}

	for _, layer := range []ClientConfig{envCfg.Client, overrides} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
