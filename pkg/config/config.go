/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the optional .verctl.yaml file describing where the
// version lives and which env files it is propagated into. Every field has a
// working default so the tool runs without any config at all; CLI flags
// override whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file discovered in the working directory.
const DefaultFileName = ".verctl.yaml"

// Defaults for every config field.
const (
	DefaultBuildFile = "Makefile"
	DefaultKey       = "VERSION"
	DefaultEnvDir    = "."
	DefaultEnvKey    = "APP_VERSION"
)

// DefaultEnvPatterns returns the env file glob patterns used when the config
// defines none.
func DefaultEnvPatterns() []string {
	return []string{"*.env"}
}

// Config represents the .verctl.yaml configuration file.
type Config struct {
	// File is the build file carrying the version line.
	File string `yaml:"file,omitempty"`

	// Key is the variable name of the version line in the build file.
	Key string `yaml:"key,omitempty"`

	// EnvDir is the directory searched for env files.
	EnvDir string `yaml:"envDir,omitempty"`

	// EnvPatterns are glob patterns, relative to EnvDir, selecting the env
	// files to patch.
	EnvPatterns []string `yaml:"envPatterns,omitempty"`

	// EnvKey is the variable name written into env files.
	EnvKey string `yaml:"envKey,omitempty"`
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	return &Config{
		File:        DefaultBuildFile,
		Key:         DefaultKey,
		EnvDir:      DefaultEnvDir,
		EnvPatterns: DefaultEnvPatterns(),
		EnvKey:      DefaultEnvKey,
	}
}

// Load reads and parses a config file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses inline YAML config content, filling defaults for anything
// the content leaves out.
func Parse(content string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.EnvDir == "" {
		cfg.EnvDir = DefaultEnvDir
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir looks for the default config file in the given directory.
// A missing file is not an error: defaults are returned instead.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// validate checks that the config is usable. Unmarshalling over defaults can
// blank a field only when the file sets it to an empty value explicitly.
func (c *Config) validate() error {
	if c.File == "" {
		return fmt.Errorf("config: file must not be empty")
	}
	if c.Key == "" {
		return fmt.Errorf("config: key must not be empty")
	}
	if c.EnvKey == "" {
		return fmt.Errorf("config: envKey must not be empty")
	}
	return nil
}
