// Package config loads command line defaults from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds defaults shared by every datasheet command.
type Config struct {
	// Delimiter is the single-character field separator.
	Delimiter string `yaml:"delimiter"`
	// TrimFields specifies whether fields are trimmed before type inference.
	TrimFields *bool `yaml:"trim_fields,omitempty"`
	// PageSize is the default page size of the page command.
	PageSize int `yaml:"page_size"`
	// DescribeRows is how many leading and trailing rows describe shows.
	DescribeRows int `yaml:"describe_rows"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Pretty specifies whether JSON output is indented.
	Pretty bool `yaml:"pretty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Delimiter:    ",",
		PageSize:     10,
		DescribeRows: 5,
		LogLevel:     "warn",
	}
}

// Load reads a YAML file over the defaults. ${VAR} references are
// replaced with environment values before parsing.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // path comes from the --config flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	content := substituteEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(filePath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.PageSize < 1 || c.PageSize > 50 {
		return fmt.Errorf("page_size must be between 1 and 50, got %d", c.PageSize)
	}
	if c.DescribeRows < 1 {
		return fmt.Errorf("describe_rows must be positive, got %d", c.DescribeRows)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Substituted values are not scanned again.
func substituteEnvVars(content string) string {
	var b strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		b.WriteString(content[:start])
		b.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	b.WriteString(content)
	return b.String()
}
