// Package config loads the optional aoc.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"svw.info/aoc/internal/domain"
)

// DefaultFile is read when no --config is given and it exists.
const DefaultFile = "aoc.yaml"

var validate = validator.New()

type Config struct {
	InputDir    string                `yaml:"input_dir" validate:"required"`
	LogLevel    string                `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile string                `yaml:"metrics_file,omitempty"`
	Params      map[int]domain.Params `yaml:"params,omitempty" validate:"dive,keys,min=1,max=25,endkeys,required"`
}

func Default() Config {
	return Config{InputDir: "inputs", LogLevel: "info"}
}

// Load reads path on top of the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c Config) Validate() error { return validate.Struct(c) }

// ParamsFor returns the configured parameters of day, never nil.
func (c Config) ParamsFor(day int) domain.Params {
	return domain.Params{}.Merge(c.Params[day])
}
