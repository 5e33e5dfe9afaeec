package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvolk/mscat/internal/manuscript"
)

// entryFlags holds the per-field flags shared by add and edit.
type entryFlags struct {
	title        string
	authors      []string
	affiliations []string
	abstract     string
	details      string
	detailsFile  string
	jsonFile     string
}

// register attaches the entry flags to a command.
func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Manuscript title")
	cmd.Flags().StringArrayVar(&f.authors, "author", nil, "Author name (repeatable, in order)")
	cmd.Flags().StringArrayVar(&f.affiliations, "affiliation", nil, "Affiliation (repeatable, in order)")
	cmd.Flags().StringVar(&f.abstract, "abstract", "", "Manuscript abstract")
	cmd.Flags().StringVar(&f.details, "details", "", "Details payload as inline JSON (methods/datasets/metrics)")
	cmd.Flags().StringVar(&f.detailsFile, "details-file", "", "Path to a details JSON file ('-' for stdin)")
	cmd.Flags().StringVar(&f.jsonFile, "json", "", "Path to a full entry JSON file ('-' for stdin)")
}

// loadDetails reads, validates, and parses the details payload, if any.
// Returns nil when no details flag was provided.
func (f *entryFlags) loadDetails() (*manuscript.Details, error) {
	var raw []byte
	switch {
	case f.detailsFile != "":
		data, err := readFileOrStdin(f.detailsFile)
		if err != nil {
			return nil, fmt.Errorf("reading details: %w", err)
		}
		raw = data
	case f.details != "":
		raw = []byte(f.details)
	default:
		return nil, nil
	}

	return manuscript.ParseDetails(raw)
}

// buildEntry assembles a full entry from the flags. With --json, the file
// supplies the whole entry (including details); other flags are rejected
// to avoid silent precedence surprises.
func (f *entryFlags) buildEntry(cmd *cobra.Command) (manuscript.Entry, error) {
	if f.jsonFile != "" {
		if anyFieldFlagChanged(cmd) {
			return manuscript.Entry{}, fmt.Errorf("--json cannot be combined with field flags")
		}
		return readEntryJSON(f.jsonFile)
	}

	if f.title == "" {
		return manuscript.Entry{}, fmt.Errorf("--title is required (or provide --json)")
	}

	details, err := f.loadDetails()
	if err != nil {
		return manuscript.Entry{}, err
	}

	return manuscript.Entry{
		Title:        f.title,
		Authors:      f.authors,
		Affiliations: f.affiliations,
		Abstract:     f.abstract,
		Details:      details,
	}, nil
}

// buildPatch assembles a partial update from the flags that were actually
// set on the command line. Unset flags leave the stored fields alone.
func (f *entryFlags) buildPatch(cmd *cobra.Command) (manuscript.EntryPatch, error) {
	if f.jsonFile != "" {
		return manuscript.EntryPatch{}, fmt.Errorf("--json is not supported for edit; use field flags")
	}

	var patch manuscript.EntryPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &f.title
	}
	if cmd.Flags().Changed("author") {
		patch.Authors = &f.authors
	}
	if cmd.Flags().Changed("affiliation") {
		patch.Affiliations = &f.affiliations
	}
	if cmd.Flags().Changed("abstract") {
		patch.Abstract = &f.abstract
	}
	if cmd.Flags().Changed("details") || cmd.Flags().Changed("details-file") {
		details, err := f.loadDetails()
		if err != nil {
			return manuscript.EntryPatch{}, err
		}
		patch.Details = details
	}

	return patch, nil
}

// anyFieldFlagChanged reports whether any per-field flag was set.
func anyFieldFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "author", "affiliation", "abstract", "details", "details-file"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// readEntryJSON reads and decodes a full entry, validating any embedded
// details payload against the schema.
func readEntryJSON(path string) (manuscript.Entry, error) {
	data, err := readFileOrStdin(path)
	if err != nil {
		return manuscript.Entry{}, fmt.Errorf("reading entry: %w", err)
	}

	var e manuscript.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return manuscript.Entry{}, fmt.Errorf("parsing entry JSON: %w", err)
	}
	if e.Title == "" {
		return manuscript.Entry{}, fmt.Errorf("entry JSON is missing a title")
	}
	if e.Details != nil {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			return manuscript.Entry{}, fmt.Errorf("encoding details: %w", err)
		}
		if err := manuscript.ValidateDetailsJSON(raw); err != nil {
			return manuscript.Entry{}, err
		}
	}
	return e, nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
