// Package importer provides functions to import catalog entries from
// external formats.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dvolk/mscat/internal/manuscript"
)

// FlexibleInt can unmarshal from either number or string JSON values.
// Legacy catalogs hold LLM-pasted records where integer fields sometimes
// arrived as strings like "7000000000".
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	// Handle null
	if string(data) == "null" {
		*f = 0
		return nil
	}

	// Try number first
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	// Try numeric string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("cannot parse %q as integer", s)
		}
		*f = FlexibleInt(v)
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleInt", string(data))
}

// FlexibleBool can unmarshal from either bool or "true"/"false" strings.
type FlexibleBool bool

func (f *FlexibleBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexibleBool(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleBool(s == "true")
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleBool", string(data))
}

// LegacyEntry represents one entry from a flat-format catalog, where the
// methods, datasets, and metrics lists sat at the top level of the entry
// instead of under a details key.
type LegacyEntry struct {
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Affiliations []string `json:"affiliations"`
	Abstract     string   `json:"abstract"`

	Methods []struct {
		ModelName     string      `json:"model_name"`
		Type          string      `json:"type"`
		EmbeddingSize FlexibleInt `json:"embedding_size"`
		Backbone      string      `json:"backbone"`
		Parameters    FlexibleInt `json:"parameters"`
	} `json:"methods"`

	Datasets []struct {
		Name       string       `json:"name"`
		Usage      string       `json:"usage"`
		Focus      string       `json:"focus"`
		SampleType string       `json:"sample_type"`
		IsPublic   FlexibleBool `json:"is_public"`
		NumSamples FlexibleInt  `json:"num_samples"`
	} `json:"datasets"`

	Metrics []struct {
		Name           string  `json:"name"`
		EvaluationType string  `json:"evaluation_type"`
		Value          float64 `json:"value"`
		Description    string  `json:"description"`
		ModelName      string  `json:"model_name"`
	} `json:"metrics"`
}

// ParseLegacyCatalog decodes a flat-format catalog document and converts
// each entry to the current shape, folding the top-level record lists
// into a details payload.
func ParseLegacyCatalog(data []byte) ([]manuscript.Entry, error) {
	var legacy []LegacyEntry
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parsing legacy catalog: %w", err)
	}

	entries := make([]manuscript.Entry, 0, len(legacy))
	for i, le := range legacy {
		if le.Title == "" {
			return nil, fmt.Errorf("legacy entry %d has no title", i)
		}
		entries = append(entries, convertLegacyEntry(le))
	}
	return entries, nil
}

func convertLegacyEntry(le LegacyEntry) manuscript.Entry {
	e := manuscript.Entry{
		Title:        le.Title,
		Authors:      le.Authors,
		Affiliations: le.Affiliations,
		Abstract:     le.Abstract,
	}

	if len(le.Methods)+len(le.Datasets)+len(le.Metrics) == 0 {
		return e
	}

	d := &manuscript.Details{}
	for _, m := range le.Methods {
		d.Methods = append(d.Methods, manuscript.Method{
			ModelName:     m.ModelName,
			Type:          m.Type,
			EmbeddingSize: int(m.EmbeddingSize),
			Backbone:      m.Backbone,
			Parameters:    int(m.Parameters),
		})
	}
	for _, ds := range le.Datasets {
		d.Datasets = append(d.Datasets, manuscript.Dataset{
			Name:       ds.Name,
			Usage:      ds.Usage,
			Focus:      ds.Focus,
			SampleType: ds.SampleType,
			IsPublic:   bool(ds.IsPublic),
			NumSamples: int(ds.NumSamples),
		})
	}
	for _, m := range le.Metrics {
		d.Metrics = append(d.Metrics, manuscript.Metric{
			Name:           m.Name,
			EvaluationType: m.EvaluationType,
			Value:          m.Value,
			Description:    m.Description,
			ModelName:      m.ModelName,
		})
	}
	e.Details = d
	return e
}
