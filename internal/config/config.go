// Package config holds the service configuration and loads it from viper,
// which merges flags, ESTUDIA_* environment variables, .env and the YAML
// config file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/estudia/internal/fuzzy"
)

// ErrUnknownMethod is returned for an unsupported fuzzy.method value.
var ErrUnknownMethod = errors.New("unknown defuzzification method")

// EnvPrefix prefixes every environment variable the service reads.
const EnvPrefix = "ESTUDIA"

// Config holds all service configuration.
type Config struct {
	Server ServerConfig
	Fuzzy  FuzzyConfig
	Debug  bool
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string
	StaticDir       string   // Served at "/" when it exists
	AllowedOrigins  []string // "*" allows any origin
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// FuzzyConfig configures the stress engine. It is read once at startup; the
// engine never changes method per call.
type FuzzyConfig struct {
	Method       string  // "bisector" or "centroid"
	NeutralScore float64 // Returned when no rule fires
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8000",
			StaticDir:       "public",
			AllowedOrigins:  []string{"*"},
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Fuzzy: FuzzyConfig{
			Method:       string(fuzzy.DefaultMethod),
			NeutralScore: fuzzy.DefaultNeutralScore,
		},
	}
}

// SetDefaults registers the defaults with v so that unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("fuzzy.method", d.Fuzzy.Method)
	v.SetDefault("fuzzy.neutral_score", d.Fuzzy.NeutralScore)
	v.SetDefault("debug", false)
}

// Load reads a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			StaticDir:       v.GetString("server.static_dir"),
			AllowedOrigins:  v.GetStringSlice("server.allowed_origins"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Fuzzy: FuzzyConfig{
			Method:       v.GetString("fuzzy.method"),
			NeutralScore: v.GetFloat64("fuzzy.neutral_score"),
		},
		Debug: v.GetBool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if _, err := fuzzy.ParseMethod(c.Fuzzy.Method); err != nil {
		return fmt.Errorf("fuzzy.method: %w %q", ErrUnknownMethod, c.Fuzzy.Method)
	}
	if c.Fuzzy.NeutralScore < 0 || c.Fuzzy.NeutralScore > 100 {
		return fmt.Errorf("fuzzy.neutral_score must be within [0, 100], got %g", c.Fuzzy.NeutralScore)
	}
	return nil
}

// Options converts the fuzzy settings to engine options.
func (f FuzzyConfig) Options() []fuzzy.Option {
	return []fuzzy.Option{
		fuzzy.WithMethod(fuzzy.Method(f.Method)),
		fuzzy.WithNeutralScore(f.NeutralScore),
	}
}
