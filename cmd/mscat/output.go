package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/dvolk/mscat/internal/manuscript"
)

// Constants for output formatting.
const (
	ListTitleMaxLen   = 60 // Title truncation in list output
	SearchTitleMaxLen = 70 // Title truncation in search result summaries
	TextWrapWidth     = 68 // Wrap width for abstracts in detail views
)

var headingColor = color.New(color.Bold, color.FgCyan)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// IndexResponse is the response for mutating commands addressed by index.
type IndexResponse struct {
	Status string `json:"status"`
	Index  int    `json:"index"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// CountResponse is the response for rebuild.
type CountResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printEntryLine prints one entry in list format: index plus truncated title.
func printEntryLine(index int, e manuscript.Entry) {
	fmt.Printf("  [%3d] %s\n", index, truncateString(e.Title, ListTitleMaxLen))
}

// printEntryDetail prints a full entry in human-readable format.
func printEntryDetail(index int, e manuscript.Entry) {
	fmt.Printf("[%d] %s\n", index, e.Title)
	fmt.Println(strings.Repeat("═", 70))

	if len(e.Authors) > 0 {
		fmt.Printf("Authors:      %s\n", wrapText(strings.Join(e.Authors, ", "), TextWrapWidth, "              "))
	}
	if len(e.Affiliations) > 0 {
		fmt.Printf("Affiliations: %s\n", wrapText(strings.Join(e.Affiliations, "; "), TextWrapWidth, "              "))
	}

	if e.Abstract != "" {
		fmt.Println()
		fmt.Println("Abstract:")
		fmt.Printf("  %s\n", wrapText(e.Abstract, TextWrapWidth, "  "))
	}

	if d := e.Details; d != nil {
		if len(d.Methods) > 0 {
			fmt.Println()
			headingColor.Println("Methods:")
			for _, m := range d.Methods {
				line := fmt.Sprintf("  %s (%s", m.ModelName, m.Type)
				if m.Backbone != "" {
					line += ", backbone " + m.Backbone
				}
				if m.Parameters > 0 {
					line += fmt.Sprintf(", %d params", m.Parameters)
				}
				fmt.Println(line + ")")
			}
		}
		if len(d.Datasets) > 0 {
			fmt.Println()
			headingColor.Println("Datasets:")
			for _, ds := range d.Datasets {
				access := "private"
				if ds.IsPublic {
					access = "public"
				}
				fmt.Printf("  %s (%s, %s)\n", ds.Name, ds.Usage, access)
			}
		}
		if len(d.Metrics) > 0 {
			fmt.Println()
			headingColor.Println("Metrics:")
			for _, mt := range d.Metrics {
				fmt.Printf("  %s = %g  [%s]\n", mt.Name, mt.Value, mt.ModelName)
			}
		}
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
