package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config represents the application configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Bundle BundleConfig `yaml:"bundle"`
}

// OutputConfig controls where and how documents are written
type OutputConfig struct {
	Dir    string `yaml:"dir" validate:"required"`
	Indent int    `yaml:"indent" validate:"min=0,max=8"`
}

// ReportConfig controls console output
type ReportConfig struct {
	Color   bool `yaml:"color"`
	Verbose bool `yaml:"verbose"`
}

// BundleConfig controls the delivery archive
type BundleConfig struct {
	Name string `yaml:"name" validate:"required,endswith=.zip"`
}

// Environment variables that override file settings
const (
	EnvOutputDir = "KORTEX_OUTPUT_DIR"
	EnvIndent    = "KORTEX_INDENT"
	EnvNoColor   = "KORTEX_NO_COLOR"
	EnvVerbose   = "KORTEX_VERBOSE"
)

var validate = validator.New()

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    ".",
			Indent: 2,
		},
		Report: ReportConfig{
			Color: true,
		},
		Bundle: BundleConfig{
			Name: "kortex-writing-hub-complete.zip",
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is not an
// error: defaults are used instead. Values from the environment (and a .env
// file in the working directory) take precedence over the file.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	if dir := strings.TrimSpace(os.Getenv(EnvOutputDir)); dir != "" {
		c.Output.Dir = dir
	}

	if raw := strings.TrimSpace(os.Getenv(EnvIndent)); raw != "" {
		indent, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvIndent, raw, err)
		}
		c.Output.Indent = indent
	}

	if raw := strings.TrimSpace(os.Getenv(EnvNoColor)); raw != "" {
		noColor, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvNoColor, raw, err)
		}
		c.Report.Color = !noColor
	}

	if raw := strings.TrimSpace(os.Getenv(EnvVerbose)); raw != "" {
		verbose, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbose, raw, err)
		}
		c.Report.Verbose = verbose
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validate.Struct(c)
}
