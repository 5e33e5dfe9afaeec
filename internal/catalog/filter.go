package catalog

import "github.com/dvolk/mscat/internal/manuscript"

// Criteria filters entries by nested record names. Empty fields are
// ignored; set fields must all match (AND semantics). Matching is
// case-sensitive exact string equality.
type Criteria struct {
	Model   string
	Dataset string
	Metric  string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Model == "" && c.Dataset == "" && c.Metric == ""
}

// Matches reports whether the entry satisfies every set criterion.
// Entries without details never match.
func (c Criteria) Matches(e manuscript.Entry) bool {
	if e.Details == nil {
		return false
	}
	if c.Model != "" && !hasMethod(e.Details.Methods, c.Model) {
		return false
	}
	if c.Dataset != "" && !hasDataset(e.Details.Datasets, c.Dataset) {
		return false
	}
	if c.Metric != "" && !hasMetric(e.Details.Metrics, c.Metric) {
		return false
	}
	return true
}

// Filter returns the entries matching the criteria, in source order.
func Filter(entries []manuscript.Entry, c Criteria) []manuscript.Entry {
	var out []manuscript.Entry
	for _, e := range entries {
		if c.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByModel returns entries with at least one method whose model_name
// equals name.
func FilterByModel(entries []manuscript.Entry, name string) []manuscript.Entry {
	return Filter(entries, Criteria{Model: name})
}

// FilterByDataset returns entries with at least one dataset named name.
func FilterByDataset(entries []manuscript.Entry, name string) []manuscript.Entry {
	return Filter(entries, Criteria{Dataset: name})
}

// FilterByMetric returns entries with at least one metric named name.
func FilterByMetric(entries []manuscript.Entry, name string) []manuscript.Entry {
	return Filter(entries, Criteria{Metric: name})
}

func hasMethod(methods []manuscript.Method, name string) bool {
	for _, m := range methods {
		if m.ModelName == name {
			return true
		}
	}
	return false
}

func hasDataset(datasets []manuscript.Dataset, name string) bool {
	for _, d := range datasets {
		if d.Name == name {
			return true
		}
	}
	return false
}

func hasMetric(metrics []manuscript.Metric, name string) bool {
	for _, m := range metrics {
		if m.Name == name {
			return true
		}
	}
	return false
}
