// Package config loads command configuration from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOption customizes how ParseEnv reads the environment.
type EnvOption func(*env.Options)

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(values map[string]string) EnvOption {
	return func(opts *env.Options) {
		opts.Environment = values
	}
}

// WithRequiredIfNoDefault marks every field without envDefault as required.
func WithRequiredIfNoDefault() EnvOption {
	return func(opts *env.Options) {
		opts.RequiredIfNoDef = true
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any, options ...EnvOption) error {
	opts := env.Options{}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
