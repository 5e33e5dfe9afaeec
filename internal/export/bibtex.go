// Package export provides functions to export catalog entries to other
// formats.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dvolk/mscat/internal/manuscript"
)

// ToBibTeX converts an entry to a BibTeX @misc record. Entries carry no
// venue or year, so @misc is the only honest entry type. index is the
// entry's catalog position, used to keep citekeys unique.
func ToBibTeX(index int, e manuscript.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@misc{%s,\n", citeKey(index, e)))

	if len(e.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", escapeLatex(strings.Join(e.Authors, " and "))))
	}

	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(e.Title)))

	if len(e.Affiliations) > 0 {
		b.WriteString(fmt.Sprintf("  institution = {%s},\n", escapeLatex(strings.Join(e.Affiliations, "; "))))
	}

	if e.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(e.Abstract)))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts the whole catalog to BibTeX format.
func ToBibTeXList(entries []manuscript.Entry) string {
	var records []string
	for i, e := range entries {
		records = append(records, ToBibTeX(i, e))
	}
	return strings.Join(records, "\n")
}

// citeKey builds a citekey from the first author's last name token, falling
// back to the catalog index.
func citeKey(index int, e manuscript.Entry) string {
	if len(e.Authors) > 0 {
		tokens := strings.Fields(e.Authors[0])
		if len(tokens) > 0 {
			if surname := asciiWord(tokens[len(tokens)-1]); surname != "" {
				return fmt.Sprintf("%s-entry%d", surname, index)
			}
		}
	}
	return fmt.Sprintf("entry%d", index)
}

// asciiWord strips everything except ASCII letters and digits.
func asciiWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
