package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/intvec"
)

// Config holds the settings that may come from a YAML file.
type Config struct {
	GrowthIncrement int    `yaml:"growth_increment"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	CheckSorted     bool   `yaml:"check_sorted"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		GrowthIncrement: intvec.DefaultGrowthIncrement,
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("yaml decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enum fields.
func (c Config) Validate() error {
	if c.GrowthIncrement <= 0 {
		return fmt.Errorf("growth_increment must be positive, got %d", c.GrowthIncrement)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Logger builds the container logger writing to w.
func (c Config) Logger(w io.Writer) (*intvec.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return intvec.NewLogger(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return intvec.NewLogger(slog.NewTextHandler(w, handlerOpts)), nil
}

// Options translates the config into container options.
func (c Config) Options(logOut io.Writer) ([]intvec.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := c.Logger(logOut)
	if err != nil {
		return nil, err
	}

	return []intvec.Option{
		intvec.WithGrowthIncrement(c.GrowthIncrement),
		intvec.WithLogger(logger),
		intvec.WithSortedCheck(c.CheckSorted),
	}, nil
}
