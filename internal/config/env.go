package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv layers CHESS_TCG_* environment variables over target.
func parseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
