// Package config loads skilllint configuration from YAML. Configuration
// errors are fatal at startup, before any file is scanned.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/skilllint/internal/models"
	"github.com/harrison/skilllint/internal/rules"
)

// ConfigFileName is the config file discovered in the scan root.
const ConfigFileName = ".skilllint.yaml"

// RuleConfig is a user-defined extra rule in the config file.
type RuleConfig struct {
	// Category names the rule set the pattern appends to
	Category string `yaml:"category"`

	// Pattern is the regular expression source text
	Pattern string `yaml:"pattern"`

	// Message describes the problem
	Message string `yaml:"message"`

	// Suggestion is the remediation text emitted verbatim
	Suggestion string `yaml:"suggestion"`
}

// HistoryConfig configures the optional run-history store.
type HistoryConfig struct {
	// Enabled turns on run recording without the --record flag
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`
}

// Config represents skilllint configuration options
type Config struct {
	// Strict enables the CI exit-code policy by default
	Strict bool `yaml:"strict"`

	// FailOn is the lowest severity that blocks in strict mode
	// ("error" or "warning")
	FailOn string `yaml:"fail_on"`

	// MaxDisplay caps violations shown per file (0 = all); display only
	MaxDisplay int `yaml:"max_display"`

	// ExampleLookahead is the number of non-blank lines inspected after
	// an example marker for an opening code fence
	ExampleLookahead int `yaml:"example_lookahead"`

	// MinLinesForAntiPatterns is the document length at which a
	// mistakes/anti-pattern section becomes required (0 disables)
	MinLinesForAntiPatterns int `yaml:"min_lines_for_antipatterns"`

	// LogLevel sets logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ExcludeDirs lists directory names skipped during discovery
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// DisabledCategories switches off whole rule sets
	DisabledCategories []string `yaml:"disabled_categories"`

	// Rules appends extra rules after the built-ins of their category
	Rules []RuleConfig `yaml:"rules"`

	// History configures the run-history store
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Strict:                  false,
		FailOn:                  "error",
		MaxDisplay:              10,
		ExampleLookahead:        3,
		MinLinesForAntiPatterns: 200,
		LogLevel:                "info",
		ExcludeDirs:             []string{"node_modules", "vendor", "dist"},
		History: HistoryConfig{
			Enabled: false,
			DBPath:  ".skilllint/history.db",
		},
	}
}

// LoadConfig reads and validates a config file, layered over defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the config file from the scan root if present, otherwise
// returns defaults. An explicit path wins over discovery and must exist.
func Discover(root, explicit string) (*Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}

	candidate := filepath.Join(root, ConfigFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return LoadConfig(candidate)
	}
	return DefaultConfig(), nil
}

// Validate rejects configuration values the scanner cannot honor.
func (c *Config) Validate() error {
	if _, ok := models.ParseSeverity(c.FailOn); !ok {
		return fmt.Errorf("fail_on must be \"error\" or \"warning\", got %q", c.FailOn)
	}
	if c.ExampleLookahead < 1 {
		return fmt.Errorf("example_lookahead must be at least 1, got %d", c.ExampleLookahead)
	}
	if c.MaxDisplay < 0 {
		return fmt.Errorf("max_display must not be negative, got %d", c.MaxDisplay)
	}
	if c.MinLinesForAntiPatterns < 0 {
		return fmt.Errorf("min_lines_for_antipatterns must not be negative, got %d", c.MinLinesForAntiPatterns)
	}

	valid := make(map[string]bool, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		valid[string(cat)] = true
	}
	for _, name := range c.DisabledCategories {
		if !valid[name] {
			return fmt.Errorf("disabled_categories: unknown category %q", name)
		}
	}
	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rules[%d]: pattern is required", i)
		}
		if !valid[rule.Category] {
			return fmt.Errorf("rules[%d]: unknown category %q", i, rule.Category)
		}
	}
	return nil
}

// FailOnSeverity returns the configured strict-mode threshold.
func (c *Config) FailOnSeverity() models.Severity {
	sev, _ := models.ParseSeverity(c.FailOn)
	return sev
}

// ExtraRules converts the config rule entries for the registry. Pattern
// compilation happens in rules.NewRegistry so malformed patterns surface
// with rule context.
func (c *Config) ExtraRules() []rules.ExtraRule {
	out := make([]rules.ExtraRule, 0, len(c.Rules))
	for _, rule := range c.Rules {
		out = append(out, rules.ExtraRule{
			Category:   models.Category(rule.Category),
			Pattern:    rule.Pattern,
			Message:    rule.Message,
			Suggestion: rule.Suggestion,
		})
	}
	return out
}

// DisabledCategoryList converts the disabled category names.
func (c *Config) DisabledCategoryList() []models.Category {
	out := make([]models.Category, 0, len(c.DisabledCategories))
	for _, name := range c.DisabledCategories {
		out = append(out, models.Category(name))
	}
	return out
}
