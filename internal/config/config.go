package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds program-wide configuration settings.
type GameConfig struct {
	Output OutputConfig `yaml:"output"`

	// TextFile is the path of the YAML message catalog.
	// Empty or missing means the built-in messages are used.
	TextFile string `yaml:"text_file"`
}

// OutputConfig controls how narration is written to the console.
type OutputConfig struct {
	// Color enables ANSI colouring of narration lines.
	Color bool `yaml:"color"`
}

// DefaultConfig returns a GameConfig with plain, uncoloured output.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Output: OutputConfig{
			Color: false,
		},
		TextFile: "data/text.yaml",
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
// If it can't be parsed, returns the default config and the error.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}
