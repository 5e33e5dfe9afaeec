package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dvolk/mscat/internal/manuscript"
)

// csvHeader defines the column layout of the CSV export.
var csvHeader = []string{
	"index", "title", "authors", "affiliations", "abstract",
	"models", "datasets", "metrics",
}

// WriteCSV writes the catalog as CSV. Nested record names are flattened
// into semicolon-separated columns; full sub-records are only available in
// the JSON catalog itself.
func WriteCSV(w io.Writer, entries []manuscript.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, e := range entries {
		row := []string{
			fmt.Sprintf("%d", i),
			e.Title,
			strings.Join(e.Authors, "; "),
			strings.Join(e.Affiliations, "; "),
			e.Abstract,
			strings.Join(methodNames(e.Details), "; "),
			strings.Join(datasetNames(e.Details), "; "),
			strings.Join(metricNames(e.Details), "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func methodNames(d *manuscript.Details) []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Methods))
	for _, m := range d.Methods {
		names = append(names, m.ModelName)
	}
	return names
}

func datasetNames(d *manuscript.Details) []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Datasets))
	for _, ds := range d.Datasets {
		names = append(names, ds.Name)
	}
	return names
}

func metricNames(d *manuscript.Details) []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Metrics))
	for _, m := range d.Metrics {
		names = append(names, m.Name)
	}
	return names
}
