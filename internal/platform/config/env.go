// Package config loads command configuration from the environment. All of
// the project's variables share one prefix; config structs tag fields with
// the unprefixed suffix.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag in a config struct.
const EnvPrefix = "STELLARFORGE_"

// ParseEnv loads prefixed environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
