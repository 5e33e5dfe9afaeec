// Package config handles catalog repository configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .mscat/config.json.
type Config struct {
	ExportFormat string `json:"export_format"`          // Default format for mscat export: bibtex, csv
	SearchLimit  int    `json:"search_limit,omitempty"` // Default result cap for mscat search (0 = DefaultSearchLimit)
}

const (
	MscatDir    = ".mscat"
	ConfigFile  = "config.json"
	CatalogFile = "catalog.json"
	CacheDir    = "cache"
	DBFile      = "catalog.db"
)

// DefaultSearchLimit caps search results when neither config nor flags
// specify a limit.
const DefaultSearchLimit = 50

// ValidExportFormats lists the supported export format values.
var ValidExportFormats = []string{"bibtex", "csv"}

// MscatPath returns the path to the .mscat directory from a root path.
func MscatPath(root string) string {
	return filepath.Join(root, MscatDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, MscatDir, ConfigFile)
}

// CatalogPath returns the path to catalog.json from a root path.
func CatalogPath(root string) string {
	return filepath.Join(root, MscatDir, CatalogFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, MscatDir, CacheDir)
}

// DBPath returns the path to the ephemeral SQLite cache from a root path.
func DBPath(root string) string {
	return filepath.Join(root, MscatDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a mscat repository.
func IsRepository(root string) bool {
	info, err := os.Stat(MscatPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a mscat repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a mscat repository (no .mscat directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateExportFormat checks that the format value is valid.
func ValidateExportFormat(format string) error {
	if format == "" {
		return nil // Empty defaults to "bibtex"
	}

	for _, valid := range ValidExportFormats {
		if format == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid export_format: %s (valid: %v)", format, ValidExportFormats)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
