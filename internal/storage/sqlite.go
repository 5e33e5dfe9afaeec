// Package storage maintains the ephemeral SQLite query cache derived from
// the catalog JSON document. The JSON file stays the source of truth; the
// cache only serves full-text search and is rebuilt from the catalog.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dvolk/mscat/internal/manuscript"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Hit pairs a matching entry with its catalog index, which is the
// addressing scheme for edit and delete.
type Hit struct {
	Index int              `json:"index"`
	Entry manuscript.Entry `json:"entry"`
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Flattened catalog entries, keyed by catalog position
		CREATE TABLE IF NOT EXISTS entries (
			entry_idx INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			authors_json TEXT NOT NULL,
			affiliations_json TEXT NOT NULL,
			details_json TEXT
		);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			entry_idx,
			title,
			abstract,
			authors_text,
			fields_text
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the cache and repopulates it from the given catalog
// entries. Returns the number of entries indexed.
func (d *DB) Rebuild(entries []manuscript.Entry) (int, error) {
	if _, err := d.db.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entryStmt, err := d.db.Prepare(`
		INSERT INTO entries (entry_idx, title, abstract, authors_json, affiliations_json, details_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing entries insert: %w", err)
	}
	defer entryStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO entries_fts (entry_idx, title, abstract, authors_text, fields_text)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, e := range entries {
		authorsJSON, err := json.Marshal(e.Authors)
		if err != nil {
			return 0, fmt.Errorf("marshaling authors for entry %d: %w", i, err)
		}
		affiliationsJSON, err := json.Marshal(e.Affiliations)
		if err != nil {
			return 0, fmt.Errorf("marshaling affiliations for entry %d: %w", i, err)
		}
		var detailsJSON []byte
		if e.Details != nil {
			detailsJSON, err = json.Marshal(e.Details)
			if err != nil {
				return 0, fmt.Errorf("marshaling details for entry %d: %w", i, err)
			}
		}

		_, err = entryStmt.Exec(i, e.Title, e.Abstract,
			string(authorsJSON), string(affiliationsJSON), nullableString(detailsJSON))
		if err != nil {
			return 0, fmt.Errorf("inserting entry %d: %w", i, err)
		}

		_, err = ftsStmt.Exec(i, e.Title, e.Abstract,
			strings.Join(e.Authors, ", "), formatFieldsText(e.Details))
		if err != nil {
			return 0, fmt.Errorf("inserting fts for entry %d: %w", i, err)
		}
	}

	return len(entries), nil
}

// formatFieldsText creates a searchable text representation of the nested
// model, dataset, and metric names.
func formatFieldsText(d *manuscript.Details) string {
	if d == nil {
		return ""
	}
	var names []string
	for _, m := range d.Methods {
		names = append(names, m.ModelName)
	}
	for _, ds := range d.Datasets {
		names = append(names, ds.Name)
	}
	for _, m := range d.Metrics {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

// Count returns the number of cached entries.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// Search performs a full-text search over title, abstract, authors, and
// nested record names. Hits come back in catalog order.
func (d *DB) Search(query string, limit int) ([]Hit, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT entry_idx, title, abstract, authors_json, affiliations_json, details_json
		FROM entries
		WHERE entry_idx IN (SELECT entry_idx FROM entries_fts WHERE entries_fts MATCH ?)
		ORDER BY entry_idx
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanHits(rows)
}

func scanHits(rows *sql.Rows) ([]Hit, error) {
	var hits []Hit
	for rows.Next() {
		var h Hit
		var abstract, detailsJSON sql.NullString
		var authorsJSON, affiliationsJSON string

		if err := rows.Scan(&h.Index, &h.Entry.Title, &abstract,
			&authorsJSON, &affiliationsJSON, &detailsJSON); err != nil {
			return nil, err
		}

		h.Entry.Abstract = abstract.String
		if err := json.Unmarshal([]byte(authorsJSON), &h.Entry.Authors); err != nil {
			return nil, fmt.Errorf("parsing authors for entry %d: %w", h.Index, err)
		}
		if err := json.Unmarshal([]byte(affiliationsJSON), &h.Entry.Affiliations); err != nil {
			return nil, fmt.Errorf("parsing affiliations for entry %d: %w", h.Index, err)
		}
		if detailsJSON.Valid {
			var details manuscript.Details
			if err := json.Unmarshal([]byte(detailsJSON.String), &details); err != nil {
				return nil, fmt.Errorf("parsing details for entry %d: %w", h.Index, err)
			}
			h.Entry.Details = &details
		}

		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func nullableString(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	// For simple queries, just quote the terms
	// FTS5 uses double quotes for phrase matching
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		// Escape internal quotes and wrap in quotes
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
