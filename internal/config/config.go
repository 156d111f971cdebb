// Package config loads the cube engine YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure.
type Config struct {
	Cube    Cube    `yaml:"cube"`
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
	Server  Server  `yaml:"server"`
}

// Cube holds defaults for newly created cubes.
type Cube struct {
	Dim            int `yaml:"dim" validate:"min=1,max=9"`
	ScrambleLength int `yaml:"scramble_length" validate:"min=0,max=1000"`
}

// Storage locates the session database.
type Storage struct {
	Path string `yaml:"path" validate:"required"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Server configures the HTTP API.
type Server struct {
	Addr      string  `yaml:"addr" validate:"required"`
	RateLimit float64 `yaml:"rate_limit" validate:"gt=0"` // requests per second
	Burst     int     `yaml:"burst" validate:"min=1"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cube:    Cube{Dim: 3, ScrambleLength: 20},
		Storage: Storage{Path: "~/.cube_engine/cube.db"},
		Log:     Log{Level: "info", Format: "console"},
		Server:  Server{Addr: ":8080", RateLimit: 20, Burst: 40},
	}
}

// Validate checks the struct tags on every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load reads a YAML file over the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
