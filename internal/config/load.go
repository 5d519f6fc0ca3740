package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./potato.yaml",
		filepath.Join(".", "config", "potato.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate rejects parameter combinations the generators would refuse anyway,
// so a bad file fails at startup instead of mid-build.
func (c *Config) validate() error {
	if c.Terrain.Size < 2 {
		return fmt.Errorf("config: terrain.size must be >= 2, got %d", c.Terrain.Size)
	}
	if c.Potato.LonSegments < 1 || c.Potato.LatSegments < 1 {
		return fmt.Errorf("config: potato segments must be >= 1, got %dx%d",
			c.Potato.LonSegments, c.Potato.LatSegments)
	}
	if c.Potato.NoiseFactor < 0 {
		return fmt.Errorf("config: potato.noise_factor must be >= 0, got %g", c.Potato.NoiseFactor)
	}
	if c.Potato.Elongation <= 0 {
		return fmt.Errorf("config: potato.elongation_factor must be > 0, got %g", c.Potato.Elongation)
	}
	return nil
}
