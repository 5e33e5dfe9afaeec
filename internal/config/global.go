// Global configuration stored outside any repository.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/mscat/config.yml.
type GlobalConfig struct {
	CatalogPath string `yaml:"catalog_path,omitempty"` // Default repository root when not inside one
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "mscat"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/mscat/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.CatalogPath != "" {
		cfg.CatalogPath = ExpandPath(cfg.CatalogPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config. Used by tests.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetCatalogPath returns the configured default repository root, or ""
// if no global config exists.
func GetCatalogPath() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.CatalogPath
}

// HelpfulConfigMessage returns guidance printed when no repository is found.
func HelpfulConfigMessage() string {
	return `error: not in a mscat repository (no .mscat directory found)

Run 'mscat init' in the directory that should hold the catalog, or point
catalog_path in ` + GlobalConfigPath() + ` at an existing repository.`
}
