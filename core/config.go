package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the global generation settings.
//
// Template is a partial document merged over the defaults key-by-key at the
// top level only. Parameters are appended to every operation's parameter
// list after its route-level parameters.
type Config struct {
	BasePathPrefix string                 `yaml:"basePathPrefix"`
	Template       map[string]interface{} `yaml:"template"`
	Parameters     []ParameterSpec        `yaml:"parameters"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("core: read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("core: parse config %q: %w", path, err)
	}
	return cfg, nil
}
