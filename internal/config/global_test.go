package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGlobalConfig_Missing(t *testing.T) {
	ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v (missing file should not fail)", err)
	}
	if cfg.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	ResetGlobalConfigCache()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	content := "catalog_path: /data/papers\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.CatalogPath != "/data/papers" {
		t.Errorf("CatalogPath = %q, want /data/papers", cfg.CatalogPath)
	}

	ResetGlobalConfigCache()
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	ResetGlobalConfigCache()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("{{nope"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() accepted malformed YAML")
	}

	ResetGlobalConfigCache()
}
