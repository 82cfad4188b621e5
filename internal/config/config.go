package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the fixture file searched for upward from the target path.
const ConfigFileName = "probe.toml"

// Config represents the complete configuration for probe
type Config struct {
	// Optional fields
	LogLevel string `toml:"log_level"`
	Plain    bool   `toml:"-"` // CLI flag, not from config file

	Fib     FibConfig     `toml:"fib"`
	Example ExampleConfig `toml:"example"`

	// Path of the loaded config file, empty when defaults are in use
	Path string `toml:"-"`
}

// FibConfig holds the fixture values for the fibonacci check
type FibConfig struct {
	N    int  `toml:"n"`
	Want *int `toml:"want"`
}

// ExampleConfig holds the fixture values for the example check
type ExampleConfig struct {
	Name       string  `toml:"name"`
	Value      int     `toml:"value"`
	Multiplier float64 `toml:"multiplier"`
}

// Default returns the built-in fixture values used when no probe.toml exists.
// They reproduce the original manual scripts: fib(10) == 55 and an
// Example("test", 42) multiplied by 2.5.
func Default() *Config {
	want := 55
	return &Config{
		Fib: FibConfig{N: 10, Want: &want},
		Example: ExampleConfig{
			Name:       "test",
			Value:      42,
			Multiplier: 2.5,
		},
	}
}

// Load loads configuration from probe.toml, searching upward from
// targetPath. A missing config file is not an error: the built-in
// defaults apply. A config file that exists but does not parse or
// validate is an error.
func Load(targetPath string) (*Config, error) {
	configPath, err := FindFile(targetPath)
	if err != nil {
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from an explicit probe.toml path.
func LoadFile(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so partial files only override what they set
	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Path = configPath
	return cfg, nil
}

// FindFile searches for probe.toml starting from the given path
func FindFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	// Search upward for probe.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s not found. Create one with:\n\n[fib]\nn = 10\nwant = 55\n\n[example]\nname = \"test\"\nvalue = 42\nmultiplier = 2.5\n", ConfigFileName)
}

// validate checks that the fixture values are usable
func (c *Config) validate() error {
	var errors []string

	if c.Fib.N < 0 {
		errors = append(errors, "fib.n must be non-negative")
	}
	if c.Example.Name == "" {
		errors = append(errors, "example.name is required")
	}
	if c.LogLevel != "" {
		switch strings.ToLower(c.LogLevel) {
		case "error", "warn", "info", "debug", "trace":
		default:
			errors = append(errors, fmt.Sprintf("invalid log_level %q", c.LogLevel))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}
