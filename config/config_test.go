package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/ontomodel/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Identity.MinIDLength != 1 {
		t.Errorf("expected min id length 1, got %d", cfg.Identity.MinIDLength)
	}
	if cfg.Identity.MinReassignIDLength != 1 {
		t.Errorf("expected min reassign id length 1, got %d", cfg.Identity.MinReassignIDLength)
	}
	if len(cfg.Taxonomy.Permitted) != 2 {
		t.Errorf("expected 2 permitted kinds, got %v", cfg.Taxonomy.Permitted)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero min id length",
			modify:  func(c *Config) { c.Identity.MinIDLength = 0 },
			wantErr: true,
		},
		{
			name:    "strict reassignment",
			modify:  func(c *Config) { c.Identity.MinReassignIDLength = 3 },
			wantErr: false,
		},
		{
			name:    "no permitted kinds",
			modify:  func(c *Config) { c.Taxonomy.Permitted = nil },
			wantErr: true,
		},
		{
			name:    "empty permitted kind",
			modify:  func(c *Config) { c.Taxonomy.Permitted = []string{"NamedElement", ""} },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name: "metrics without namespace",
			modify: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Namespace = ""
			},
			wantErr: true,
		},
		{
			name:    "disabled metrics without namespace",
			modify:  func(c *Config) { c.Metrics.Namespace = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
identity:
  min_id_length: 2
  min_reassign_id_length: 3
taxonomy:
  permitted:
    - NamedElement
logging:
  level: debug
metrics:
  enabled: true
  namespace: modeler
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Identity.MinIDLength != 2 {
		t.Errorf("expected min id length 2, got %d", cfg.Identity.MinIDLength)
	}
	if cfg.Identity.MinReassignIDLength != 3 {
		t.Errorf("expected min reassign id length 3, got %d", cfg.Identity.MinReassignIDLength)
	}
	if len(cfg.Taxonomy.Permitted) != 1 || cfg.Taxonomy.Permitted[0] != "NamedElement" {
		t.Errorf("expected permitted [NamedElement], got %v", cfg.Taxonomy.Permitted)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "modeler" {
		t.Errorf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Identity: IdentityConfig{
			MinReassignIDLength: 3,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}

	base.Merge(override)

	if base.Identity.MinReassignIDLength != 3 {
		t.Errorf("expected reassign length 3, got %d", base.Identity.MinReassignIDLength)
	}
	// MinIDLength should remain from base since override didn't set it
	if base.Identity.MinIDLength != 1 {
		t.Errorf("expected min id length to remain 1, got %d", base.Identity.MinIDLength)
	}
	if base.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", base.Logging.Level)
	}
	if len(base.Taxonomy.Permitted) != 2 {
		t.Errorf("expected permitted kinds to remain default, got %v", base.Taxonomy.Permitted)
	}
}

func TestMergeMetricsEnabledFromFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) *Config {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		layer, err := loadLayer(path)
		if err != nil {
			t.Fatalf("loadLayer(%s) error = %v", name, err)
		}
		return layer
	}

	base := DefaultConfig()
	base.Merge(write("on.yaml", "metrics:\n  enabled: true\n"))
	if !base.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}

	base.Merge(write("silent.yaml", "metrics:\n  namespace: other\n"))
	if !base.Metrics.Enabled {
		t.Error("a layer without enabled must not disable metrics")
	}
	if base.Metrics.Namespace != "other" {
		t.Errorf("expected namespace other, got %s", base.Metrics.Namespace)
	}

	base.Merge(write("off.yaml", "metrics:\n  enabled: false\n"))
	if base.Metrics.Enabled {
		t.Error("an explicit enabled: false must disable metrics")
	}
}

func TestLoadFromFileKeepsMetricsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("metrics:\n  enabled: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "ontomodel" {
		t.Errorf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Identity.MinReassignIDLength = 3

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Identity.MinReassignIDLength != 3 {
		t.Errorf("expected reassign length 3, got %d", loaded.Identity.MinReassignIDLength)
	}
}

func TestConfigBuildsModelSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Identity.MinReassignIDLength = 3

	policy := cfg.IDPolicy()
	if policy.MinLength != 1 || policy.MinReassignLength != 3 {
		t.Errorf("unexpected policy %+v", policy)
	}

	cfg.Taxonomy.Permitted = []string{"NamedElement"}
	tax, err := cfg.NewTaxonomy()
	if err != nil {
		t.Fatalf("NewTaxonomy() error = %v", err)
	}
	if err := tax.Check(model.KindClass); err != nil {
		t.Errorf("Class rejected: %v", err)
	}
	if err := tax.Check(model.KindRectangle); !errors.Is(err, model.ErrDisallowedTaxonomy) {
		t.Errorf("Rectangle accepted with only NamedElement permitted: %v", err)
	}

	cfg.Taxonomy.Permitted = nil
	if _, err := cfg.NewTaxonomy(); err == nil {
		t.Error("expected error for empty permitted list")
	}
}

func TestLoaderLayers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userDir := filepath.Join(home, UserConfigDir)
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, UserConfigFile), []byte("logging:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	project := t.TempDir()
	nested := filepath.Join(project, "models", "library")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("identity:\n  min_reassign_id_length: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	cfg, err := NewLoader(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected user level warn, got %s", cfg.Logging.Level)
	}
	if cfg.Identity.MinReassignIDLength != 3 {
		t.Errorf("expected project reassign length 3, got %d", cfg.Identity.MinReassignIDLength)
	}

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewLoader(nil).Load(explicit)
	if err != nil {
		t.Fatalf("Load(explicit) error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected explicit level error, got %s", cfg.Logging.Level)
	}

	if _, err := NewLoader(nil).Load(filepath.Join(project, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(nil).Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := NewLoader(nil)
	if err := l.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("user config not created: %v", err)
	}
	// second call is a no-op
	if err := l.EnsureUserConfig(); err != nil {
		t.Errorf("EnsureUserConfig() second call error = %v", err)
	}
}
