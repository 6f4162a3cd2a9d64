package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the expected YAML file inside the config dir.
const ConfigFileName = "fateforger.yaml"

var (
	// ErrConfigNotFound indicates the YAML file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrInvalidYAML indicates the file exists but does not parse.
	ErrInvalidYAML = errors.New("invalid YAML syntax")
)

// load reads the YAML file, expands environment variables, and merges
// the result over the built-in defaults.
func load(_ context.Context, configDir string) (*Config, error) {
	path := filepath.Join(configDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	// Start with defaults, then merge user config on top so unset
	// fields keep their default values.
	cfg := DefaultConfig()
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	return cfg, nil
}
