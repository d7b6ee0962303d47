package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lepinkainen/biblio/internal/datastore"
)

// openStore builds the datastore selected by datasette.mode.
func openStore() (datastore.Store, error) {
	switch mode := viper.GetString("datasette.mode"); mode {
	case "", "local":
		dbFile := viper.GetString("datasette.dbfile")
		if dbFile == "" {
			dbFile = "./biblio.db"
		}
		return datastore.NewSQLiteStore(dbFile), nil
	case "remote":
		remoteURL := viper.GetString("datasette.remote_url")
		if remoteURL == "" {
			return nil, fmt.Errorf("datasette.remote_url is required in remote mode")
		}
		return datastore.NewDatasetteClient(
			remoteURL,
			viper.GetString("datasette.api_token"),
			viper.GetString("datasette.database"),
		), nil
	default:
		return nil, fmt.Errorf("unknown datasette mode %q (want local or remote)", mode)
	}
}

// WriteToDatastore exports items to the configured datastore when
// datasette.enabled is set. toRow converts each item to a table row.
func WriteToDatastore[T any](items []T, schema, table, description string, toRow func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return err
	}

	rows := make([]map[string]any, len(items))
	for i, item := range items {
		rows[i] = toRow(item)
	}

	if err := store.BatchInsert(table, rows); err != nil {
		return fmt.Errorf("failed to export %s: %w", description, err)
	}

	slog.Info("Exported to datastore", "table", table, "count", len(rows), "what", description)
	return nil
}
