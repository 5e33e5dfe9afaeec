package catalog

import (
	"sort"

	"github.com/dvolk/mscat/internal/manuscript"
)

// FieldSummary holds the deduplicated names found across the catalog's
// nested records.
type FieldSummary struct {
	Models   []string `json:"models"`
	Datasets []string `json:"datasets"`
	Metrics  []string `json:"metrics"`
}

// CollectFields scans every entry's details and returns the unique model,
// dataset, and metric names, sorted. Entries without details are skipped,
// as are nested records with an empty name.
func CollectFields(entries []manuscript.Entry) FieldSummary {
	models := make(map[string]struct{})
	datasets := make(map[string]struct{})
	metrics := make(map[string]struct{})

	for _, e := range entries {
		if e.Details == nil {
			continue
		}
		for _, m := range e.Details.Methods {
			if m.ModelName != "" {
				models[m.ModelName] = struct{}{}
			}
		}
		for _, d := range e.Details.Datasets {
			if d.Name != "" {
				datasets[d.Name] = struct{}{}
			}
		}
		for _, m := range e.Details.Metrics {
			if m.Name != "" {
				metrics[m.Name] = struct{}{}
			}
		}
	}

	return FieldSummary{
		Models:   sortedKeys(models),
		Datasets: sortedKeys(datasets),
		Metrics:  sortedKeys(metrics),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
