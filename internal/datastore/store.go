// Package datastore exports rows to a local SQLite database or a remote
// Datasette instance.
package datastore

import (
	"fmt"
	"regexp"
)

// Store is a write-only sink for table rows.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable runs a CREATE TABLE IF NOT EXISTS schema
	CreateTable(schema string) error

	// BatchInsert inserts rows into the named table in one batch
	BatchInsert(table string, rows []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// CitationsTable is the table every formatting run is exported to.
const CitationsTable = "citations"

// CitationsSchema creates the citations table. Each run adds one row per
// citation, tagged with the run id.
const CitationsSchema = `CREATE TABLE IF NOT EXISTS citations (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	style TEXT NOT NULL,
	kind TEXT NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
)`

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkIdentifier(name string) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}
