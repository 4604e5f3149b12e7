package aoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML run configuration. Command-line flags
// override it.
type Config struct {
	InputDir   string `yaml:"input_dir"`
	Color      bool   `yaml:"color"`
	AreaMethod string `yaml:"area_method"`
	LogLevel   string `yaml:"log_level"`
	SkipSample bool   `yaml:"skip_sample"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:   ".",
		Color:      true,
		AreaMethod: "raycast",
		LogLevel:   "warn",
	}
}

// LoadConfig reads path, filling anything it leaves unset from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.InputDir = Or(c.InputDir, ".")
	c.AreaMethod = Or(c.AreaMethod, "raycast")
	c.LogLevel = Or(c.LogLevel, "warn")
	return c, nil
}
