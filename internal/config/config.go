// SPDX-License-Identifier: MIT
// Package: qubitmap/internal/config
//
// config.go — YAML configuration for the qroute command.
//
// Missing keys keep their Default() value; unknown keys are rejected.

// Package config loads and validates the qroute YAML configuration and
// turns it into placement and router options and a slog logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qubitmap/placement"
	"github.com/katalvlaran/qubitmap/router"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	Placement Placement `yaml:"placement"`
	Router    Router    `yaml:"router"`
	Log       Log       `yaml:"log"`
}

// Placement configures placement.Place.
type Placement struct {
	BeamWidth int `yaml:"beam_width" validate:"gte=1"`
}

// Router configures router.Route.
type Router struct {
	MaxAttempts int    `yaml:"max_attempts" validate:"gte=1"`
	StallLimit  int    `yaml:"stall_limit" validate:"gte=1"`
	ClbitPolicy string `yaml:"clbit_policy" validate:"oneof=declared layout"`
	Verify      bool   `yaml:"verify"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default mirrors the library defaults.
func Default() Config {
	return Config{
		Placement: Placement{BeamWidth: placement.DefaultBeamWidth},
		Router: Router{
			MaxAttempts: router.DefaultMaxAttempts,
			StallLimit:  router.DefaultStallLimit,
			ClbitPolicy: router.ClbitDeclared.String(),
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Parse decodes data over Default() and validates the result.
// Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// PlacementOptions converts the placement section.
func (c Config) PlacementOptions() []placement.Option {
	return []placement.Option{placement.WithBeamWidth(c.Placement.BeamWidth)}
}

// RouterOptions converts the router section.
func (c Config) RouterOptions() ([]router.Option, error) {
	policy, err := router.ParseClbitPolicy(c.Router.ClbitPolicy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return []router.Option{
		router.WithMaxAttempts(c.Router.MaxAttempts),
		router.WithStallLimit(c.Router.StallLimit),
		router.WithClbitPolicy(policy),
	}, nil
}

// Logger builds a slog logger writing to w in the configured format and level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) level() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
