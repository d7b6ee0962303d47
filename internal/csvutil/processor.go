package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Row is one CSV record keyed by the (trimmed, lower-cased) header names.
// Columns missing from the header read as empty strings.
type Row map[string]string

// Get returns the value of column name, or "" when the column is absent.
func (r Row) Get(name string) string {
	return r[name]
}

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// SkipInvalid controls whether to skip invalid records or return an error.
	SkipInvalid bool
}

// ProcessCSV reads a CSV file with a header row and parses each record into type T.
// The parser receives the 1-based data row number and the row keyed by header.
func ProcessCSV[T any](filename string, parser func(n int, row Row) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	// File existence check
	if fi, err := csvFile.Stat(); err != nil || fi.Size() == 0 {
		return nil, fmt.Errorf("CSV file is empty or cannot be read")
	}

	return ProcessReader(csvFile, parser, opts)
}

// ProcessReader is ProcessCSV over an already opened reader.
func ProcessReader[T any](r io.Reader, parser func(n int, row Row) (T, error), opts ProcessorOptions) ([]T, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	}
	reader.FieldsPerRecord = len(header)

	var items []T
	n := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		n++
		if err != nil {
			if opts.SkipInvalid {
				slog.Warn("Error reading record", "row", n, "error", err)
				continue
			}
			return nil, fmt.Errorf("row %d: %w", n, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}

		item, err := parser(n, row)
		if err != nil {
			if opts.SkipInvalid {
				slog.Warn("Skipping invalid record", "row", n, "error", err)
				continue
			}
			return nil, fmt.Errorf("invalid record: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
