package config

import (
	"fmt"

	"github.com/docsmith-dev/docsmith/internal/generator"
)

// Config is the complete docsmith configuration. It can be loaded from
// .docsmith/config.yml with environment variable overrides.
type Config struct {
	Gemini GeminiConfig `yaml:"gemini" mapstructure:"gemini"`
	Style  string       `yaml:"style" mapstructure:"style"`
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
}

// GeminiConfig configures the remote generation service.
type GeminiConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"` // empty means generation short-circuits to error results
	Model  string `yaml:"model" mapstructure:"model"`     // opaque model identifier passed to the service
}

// PathsConfig defines which files directory targets pick up.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for Python sources
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Style: string(generator.StyleGoogle),
		Paths: PathsConfig{
			Include: []string{"**/*.py"},
			Ignore: []string{
				".git/**",
				"venv/**",
				".venv/**",
				"__pycache__/**",
				"**/__pycache__/**",
				"build/**",
				"dist/**",
			},
		},
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func Validate(cfg *Config) error {
	if _, err := generator.ParseStyle(cfg.Style); err != nil {
		return err
	}
	if cfg.Gemini.Model == "" {
		return fmt.Errorf("gemini.model must not be empty")
	}
	return nil
}
