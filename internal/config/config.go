package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/cfgmerge/internal/jsonc"
)

// MaxIndent bounds output.indent.
const MaxIndent = 16

// Config represents the complete configuration for cfgmerge
type Config struct {
	Output OutputConfig `yaml:"output"`
	JSONC  JSONCConfig  `yaml:"jsonc"`
	List   ListConfig   `yaml:"list"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how JSON output is rendered
type OutputConfig struct {
	Indent int `yaml:"indent"`
}

// JSONCConfig controls comment stripping
type JSONCConfig struct {
	// StringAware makes block comment and trailing comma removal skip
	// string literals.
	StringAware bool `yaml:"string_aware"`
}

// ListConfig controls list filtering
type ListConfig struct {
	CommentPrefix string `yaml:"comment_prefix"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent: 2,
		},
		JSONC: JSONCConfig{
			StringAware: false,
		},
		List: ListConfig{
			CommentPrefix: "#",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Output.Indent < 1 || c.Output.Indent > MaxIndent {
		return fmt.Errorf("output.indent must be between 1 and %d, got %d", MaxIndent, c.Output.Indent)
	}
	if c.List.CommentPrefix == "" {
		return fmt.Errorf("list.comment_prefix must not be empty")
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFileFrom(currentDir)
}

func findConfigFileFrom(dir string) string {
	configNames := []string{".cfgmerge.yml", ".cfgmerge.yaml", "cfgmerge.yml", "cfgmerge.yaml"}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root directory
			break
		}
		dir = parentDir
	}

	return ""
}

// JSONCOptions returns the stripping options the config selects.
func (c *Config) JSONCOptions() jsonc.Options {
	return jsonc.Options{StringAware: c.JSONC.StringAware}
}

// Overrides holds settings given on the command line. Zero values mean the
// flag was not given.
type Overrides struct {
	Indent      int
	StringAware bool
	Debug       bool
}

// LoadConfigWithCLI loads config with CLI argument precedence. An empty
// configPath falls back to FindConfigFile, then to defaults.
func LoadConfigWithCLI(configPath string, cli Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli.Indent != 0 {
		cfg.Output.Indent = cli.Indent
	}
	// Boolean flags can only switch features on
	if cli.StringAware {
		cfg.JSONC.StringAware = true
	}
	if cli.Debug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
