package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the gitsigns settings loaded from ~/.gitsigns/config.yaml.
type Config struct {
	// GitPath is the git binary to invoke. Empty means "git" from PATH.
	GitPath string `yaml:"git_path"`

	// DiffAlgorithm selects git's diff algorithm: myers, minimal,
	// patience or histogram.
	DiffAlgorithm string `yaml:"diff_algorithm"`

	// Untracked enables intent-to-add handling for untracked files.
	Untracked bool `yaml:"untracked"`

	// Debug passes raw placeholders through in repo info and raises
	// diagnostic verbosity.
	Debug bool `yaml:"debug"`

	// Preview configures the popup windows.
	Preview struct {
		MaxHeight int    `yaml:"max_height"`
		MaxWidth  int    `yaml:"max_width"`
		Highlight string `yaml:"highlight"`
	} `yaml:"preview"`
}

var diffAlgorithms = map[string]bool{
	"myers":     true,
	"minimal":   true,
	"patience":  true,
	"histogram": true,
}

func DefaultConfig() *Config {
	cfg := &Config{
		DiffAlgorithm: "myers",
		Untracked:     true,
	}
	cfg.Preview.MaxHeight = 20
	cfg.Preview.MaxWidth = 100
	return cfg
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gitsigns", "config.yaml")
}

func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file, falling back to defaults when it does not
// exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values git itself would reject.
func (c *Config) Validate() error {
	if c.DiffAlgorithm != "" && !diffAlgorithms[c.DiffAlgorithm] {
		return fmt.Errorf("unknown diff algorithm %q", c.DiffAlgorithm)
	}
	if c.Preview.MaxHeight < 0 || c.Preview.MaxWidth < 0 {
		return fmt.Errorf("preview dimensions must be non-negative")
	}
	return nil
}

func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unexpanded if home unavailable
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
