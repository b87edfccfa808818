// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for greet.
type Config struct {
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
	Name     string `mapstructure:"name" yaml:"name"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration: the values that make a
// bare run print "Hello, World!".
func Default() *Config {
	return &Config{
		Prefix:   "Hello",
		Name:     "World",
		LogLevel: "info",
	}
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("greet")

	def := Default()
	v.SetDefault("prefix", def.Prefix)
	v.SetDefault("name", def.Name)
	v.SetDefault("log_level", def.LogLevel)

	// ENV binding with GREET_ prefix
	v.SetEnvPrefix("GREET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings; BindEnv only fails on invalid key names
	// but we check anyway
	if err := v.BindEnv("prefix", "GREET_PREFIX"); err != nil {
		return nil, fmt.Errorf("binding prefix env: %w", err)
	}
	if err := v.BindEnv("name", "GREET_NAME"); err != nil {
		return nil, fmt.Errorf("binding name env: %w", err)
	}
	if err := v.BindEnv("log_level", "GREET_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}

	// Global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Project config merges on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded values. The prefix and name are free-form
// (any string is a valid greeting input, including empty); only the
// log level is constrained.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level: %s (use debug, info, warn, or error)", c.LogLevel)
	}
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path:
// $XDG_CONFIG_HOME/greet/greet.yml, or ~/.config/greet/greet.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "greet", "greet.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "greet", "greet.yml")
}

// ProjectPath returns the project-local config path: ./greet.yml in
// the current working directory.
func ProjectPath() string {
	return "greet.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
