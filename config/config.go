// Package config provides CLI configuration management for the meetscan
// command-line tool. It supports loading configuration from YAML files,
// environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatMarkdown is a markdown action-item report.
	OutputFormatMarkdown OutputFormat = "markdown"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	DefaultOutputFormat     = OutputFormatText
	DefaultContextWindow    = 1
	DefaultBatchConcurrency = 4
	DefaultConfigDir        = ".meetscan"
	DefaultConfigFile       = "config.yaml"
)

// CLIConfig holds the CLI configuration settings.
type CLIConfig struct {
	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format"`

	// IncludeStats appends the statistics section to reports.
	IncludeStats bool `yaml:"include_stats"`

	// IncludeContext attaches surrounding-message snippets to action items.
	IncludeContext bool `yaml:"include_context,omitempty"`

	// ContextWindow is the number of neighbouring messages on each side
	// included in a context snippet.
	ContextWindow int `yaml:"context_window,omitempty"`

	// ExtraActionKeywords extends the built-in action keyword set, for teams
	// with their own verbal conventions ("to own", "AI:").
	ExtraActionKeywords []string `yaml:"extra_action_keywords,omitempty"`

	// BatchConcurrency is the number of transcripts processed in parallel
	// in batch mode.
	BatchConcurrency int `yaml:"batch_concurrency"`

	// ReportTitle overrides the default report heading.
	ReportTitle string `yaml:"report_title,omitempty"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns a CLIConfig with default values.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		OutputFormat:     DefaultOutputFormat,
		IncludeStats:     true,
		ContextWindow:    DefaultContextWindow,
		BatchConcurrency: DefaultBatchConcurrency,
	}
}

// ConfigDir returns the configuration directory path.
// Uses $MEETSCAN_CONFIG_DIR if set, otherwise ~/.meetscan
func ConfigDir() (string, error) {
	if dir := os.Getenv("MEETSCAN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the CLI configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.meetscan/config.yaml or $MEETSCAN_CONFIG_DIR/config.yaml)
// 3. Environment variables (MEETSCAN_OUTPUT_FORMAT, MEETSCAN_DEBUG, ...)
func LoadConfig() (*CLIConfig, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file. Absent fields keep
// their current values.
func loadFromFile(cfg *CLIConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	type configFile struct {
		OutputFormat        OutputFormat `yaml:"output_format"`
		IncludeStats        *bool        `yaml:"include_stats"`
		IncludeContext      *bool        `yaml:"include_context"`
		ContextWindow       *int         `yaml:"context_window"`
		ExtraActionKeywords []string     `yaml:"extra_action_keywords"`
		BatchConcurrency    *int         `yaml:"batch_concurrency"`
		ReportTitle         string       `yaml:"report_title"`
		Debug               *bool        `yaml:"debug"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.OutputFormat != "" {
		cfg.OutputFormat = fileCfg.OutputFormat
	}
	if fileCfg.IncludeStats != nil {
		cfg.IncludeStats = *fileCfg.IncludeStats
	}
	if fileCfg.IncludeContext != nil {
		cfg.IncludeContext = *fileCfg.IncludeContext
	}
	if fileCfg.ContextWindow != nil {
		cfg.ContextWindow = *fileCfg.ContextWindow
	}
	if fileCfg.ExtraActionKeywords != nil {
		cfg.ExtraActionKeywords = fileCfg.ExtraActionKeywords
	}
	if fileCfg.BatchConcurrency != nil {
		cfg.BatchConcurrency = *fileCfg.BatchConcurrency
	}
	if fileCfg.ReportTitle != "" {
		cfg.ReportTitle = fileCfg.ReportTitle
	}
	if fileCfg.Debug != nil {
		cfg.Debug = *fileCfg.Debug
	}

	return nil
}

// loadFromEnv overlays environment variables onto the configuration.
func loadFromEnv(cfg *CLIConfig) {
	if v := os.Getenv("MEETSCAN_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(v)
	}

	if v := os.Getenv("MEETSCAN_INCLUDE_STATS"); v != "" {
		cfg.IncludeStats = v == "true" || v == "1"
	}

	if v := os.Getenv("MEETSCAN_INCLUDE_CONTEXT"); v == "true" || v == "1" {
		cfg.IncludeContext = true
	}

	if v := os.Getenv("MEETSCAN_CONTEXT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextWindow = n
		}
	}

	if v := os.Getenv("MEETSCAN_EXTRA_KEYWORDS"); v != "" {
		var keywords []string
		for _, kw := range strings.Split(v, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		cfg.ExtraActionKeywords = keywords
	}

	if v := os.Getenv("MEETSCAN_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchConcurrency = n
		}
	}

	if v := os.Getenv("MEETSCAN_REPORT_TITLE"); v != "" {
		cfg.ReportTitle = v
	}

	if v := os.Getenv("MEETSCAN_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}
}

// Validate checks that the configuration is valid.
func (c *CLIConfig) Validate() error {
	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output_format: %q (must be text, markdown, json, or yaml)", c.OutputFormat)
	}

	if c.ContextWindow < 0 {
		return fmt.Errorf("context_window must not be negative")
	}

	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("batch_concurrency must be positive")
	}

	return nil
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatMarkdown, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *CLIConfig) error {
	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("getting config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
