package export

import (
	"strings"
	"testing"

	"github.com/dvolk/mscat/internal/manuscript"
)

func TestToBibTeX_FullEntry(t *testing.T) {
	e := manuscript.Entry{
		Title:        "Scaling Laws & Limits",
		Authors:      []string{"Jane Smith", "Wei Chen"},
		Affiliations: []string{"MIT", "Stanford"},
		Abstract:     "We study 100% of cases.",
	}

	got := ToBibTeX(3, e)

	if !strings.HasPrefix(got, "@misc{Smith-entry3,") {
		t.Errorf("citekey line = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.Contains(got, "author = {Jane Smith and Wei Chen}") {
		t.Errorf("authors not formatted: %s", got)
	}
	if !strings.Contains(got, `title = {Scaling Laws \& Limits}`) {
		t.Errorf("ampersand not escaped: %s", got)
	}
	if !strings.Contains(got, `abstract = {We study 100\% of cases.}`) {
		t.Errorf("percent not escaped: %s", got)
	}
	if !strings.Contains(got, "institution = {MIT; Stanford}") {
		t.Errorf("affiliations missing: %s", got)
	}
}

func TestToBibTeX_NoAuthors(t *testing.T) {
	got := ToBibTeX(0, manuscript.Entry{Title: "Anonymous"})

	if !strings.HasPrefix(got, "@misc{entry0,") {
		t.Errorf("fallback citekey wrong: %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Contains(got, "author =") {
		t.Error("author field emitted for authorless entry")
	}
}

func TestToBibTeXList(t *testing.T) {
	entries := []manuscript.Entry{
		{Title: "First", Authors: []string{"A One"}},
		{Title: "Second", Authors: []string{"B Two"}},
	}

	got := ToBibTeXList(entries)
	if strings.Count(got, "@misc{") != 2 {
		t.Errorf("expected 2 records, got: %s", got)
	}
	if !strings.Contains(got, "One-entry0") || !strings.Contains(got, "Two-entry1") {
		t.Errorf("citekeys not unique per index: %s", got)
	}
}
