// Package pdf extracts manuscript text from local PDF files.
package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText returns the plain text of a PDF, pages joined by blank
// lines. maxPages caps how many pages are read; 0 means all pages.
// Pages that cannot be decoded are skipped.
func ExtractText(filePath string, maxPages int) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}
