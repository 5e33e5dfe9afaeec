// Package catalog implements the manuscript record store backed by a
// single JSON document on disk.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dvolk/mscat/internal/manuscript"
)

// ErrCatalogCorrupt indicates the catalog file exists but is not valid JSON.
var ErrCatalogCorrupt = errors.New("catalog file is not valid JSON")

// ReadFile reads the full catalog from a JSON file. A missing file is not
// an error: it yields an empty catalog.
func ReadFile(path string) ([]manuscript.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	// An empty or whitespace-only file is treated as an empty catalog,
	// matching the state right after init.
	if isBlank(data) {
		return nil, nil
	}

	var entries []manuscript.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogCorrupt, err)
	}
	return entries, nil
}

// WriteFile serializes the full catalog to a JSON file, replacing any
// existing content. The write is not atomic: a crash mid-write can leave a
// truncated file.
func WriteFile(path string, entries []manuscript.Entry) error {
	if entries == nil {
		entries = []manuscript.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

func isBlank(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
