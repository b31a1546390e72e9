// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment prefix bound by LoadConfig (PARLU_BACKEND, PARLU_WORKERS).
const EnvPrefix = "PARLU"

// Config selects a backend and its worker cap.
type Config struct {
	// Backend is one of sequential, spin, tasks, lapack. Empty means DefaultBackend.
	Backend string `mapstructure:"backend"`
	// Workers caps concurrently computed rows; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Backend: DefaultBackend, Workers: DefaultWorkers}
}

// Validate checks the backend name and worker count.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendSequential, BackendSpin, BackendTasks, BackendLAPACK:
	default:
		return fmt.Errorf("%w: backend %q: %w", ErrInvalidConfig, c.Backend, ErrUnknownBackend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// LoadConfig reads Config from v (a fresh viper instance when nil), with
// defaults from DefaultConfig and environment overrides under EnvPrefix.
// Backend names are trimmed and lower-cased while decoding.
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	def := DefaultConfig()
	v.SetDefault("backend", def.Backend)
	v.SetDefault("workers", def.Workers)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(normalizeStringHook())); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// normalizeStringHook trims and lower-cases every string decoded into a string field.
func normalizeStringHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}

		return strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())), nil
	}
}
