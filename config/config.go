// Package config provides configuration loading and management for ontomodel.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontomodel/model"
	"github.com/c360studio/ontomodel/nonempty"
)

// Config represents the complete ontomodel configuration
type Config struct {
	Identity IdentityConfig `yaml:"identity"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// IdentityConfig configures element id validation
type IdentityConfig struct {
	// MinIDLength is the minimum id length when an element is constructed
	MinIDLength int `yaml:"min_id_length" validate:"gte=1"`
	// MinReassignIDLength is the minimum id length when an id is reassigned.
	// Kept separate so the stricter 3-character reassignment rule can be
	// switched on without affecting construction.
	MinReassignIDLength int `yaml:"min_reassign_id_length" validate:"gte=1"`
}

// TaxonomyConfig configures the taxonomy gate
type TaxonomyConfig struct {
	// Permitted lists the kinds every constructible kind must descend from
	Permitted []string `yaml:"permitted" validate:"min=1,dive,required"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig configures graph metrics
type MetricsConfig struct {
	// Enabled turns on Prometheus counters for graph edges
	Enabled bool `yaml:"enabled"`
	// Namespace prefixes every metric name
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`

	// enabledSet records that a loaded file set enabled explicitly, so an
	// explicit false can override an earlier layer.
	enabledSet bool
}

// UnmarshalYAML decodes the metrics block and notes whether enabled was given.
func (m *MetricsConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain MetricsConfig
	p := plain(*m)
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = MetricsConfig(p)
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "enabled" {
				m.enabledSet = true
			}
		}
	}
	return nil
}

var configValidate = validator.New()

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Identity: IdentityConfig{
			MinIDLength:         1,
			MinReassignIDLength: 1,
		},
		Taxonomy: TaxonomyConfig{
			Permitted: []string{string(model.KindNamedElement), string(model.KindShape)},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "ontomodel",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// IDPolicy returns the id policy for model construction
func (c *Config) IDPolicy() model.IDPolicy {
	return model.IDPolicy{
		MinLength:         c.Identity.MinIDLength,
		MinReassignLength: c.Identity.MinReassignIDLength,
	}
}

// NewTaxonomy builds the standard taxonomy gated on the configured kinds
func (c *Config) NewTaxonomy() (*model.Taxonomy, error) {
	kinds := make([]model.Kind, len(c.Taxonomy.Permitted))
	for i, k := range c.Taxonomy.Permitted {
		kinds[i] = model.Kind(k)
	}
	permitted, err := nonempty.FromSlice(kinds)
	if err != nil {
		return nil, fmt.Errorf("taxonomy.permitted: %w", err)
	}
	return model.NewStandardTaxonomy(permitted)
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.Logging.Level)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// loadLayer reads a YAML file without defaults, so Merge only applies the
// values the file actually sets.
func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	layer := &Config{}
	if err := yaml.Unmarshal(data, layer); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return layer, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero
// values, and for metrics.enabled whenever a loaded file sets it)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Identity
	if other.Identity.MinIDLength != 0 {
		c.Identity.MinIDLength = other.Identity.MinIDLength
	}
	if other.Identity.MinReassignIDLength != 0 {
		c.Identity.MinReassignIDLength = other.Identity.MinReassignIDLength
	}

	// Taxonomy
	if len(other.Taxonomy.Permitted) > 0 {
		c.Taxonomy.Permitted = other.Taxonomy.Permitted
	}

	// Logging
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}

	// Metrics. A zero Enabled only counts when a file set it explicitly.
	if other.Metrics.Enabled || other.Metrics.enabledSet {
		c.Metrics.Enabled = other.Metrics.Enabled
	}
	if other.Metrics.Namespace != "" {
		c.Metrics.Namespace = other.Metrics.Namespace
	}
}
