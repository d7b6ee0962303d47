package bibliography

import (
	"github.com/lepinkainen/biblio/internal/cmdutil"
	"github.com/lepinkainen/biblio/internal/datastore"
)

type citationRow struct {
	RunID string `db:"run_id"`
	Citation
}

func citationToMap(row citationRow) map[string]any {
	return cmdutil.StructToMap(row, cmdutil.StructToMapOptions{})
}

// writeToDatastore exports the list tagged with runID when datasette is enabled.
func writeToDatastore(list []Citation, runID string) error {
	rows := make([]citationRow, len(list))
	for i, c := range list {
		rows[i] = citationRow{RunID: runID, Citation: c}
	}
	return cmdutil.WriteToDatastore(rows, datastore.CitationsSchema, datastore.CitationsTable, "citations", citationToMap)
}
