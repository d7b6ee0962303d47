// Package loader reads bibliographic source files into records.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/biblio/internal/csvutil"
	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
)

// Document is the content of one source file.
type Document struct {
	// Style is the citation style the file asks for, empty when it names none.
	Style   string
	Records []records.Record
}

type yamlDocument struct {
	Style   string      `yaml:"style"`
	Sources []yaml.Node `yaml:"sources"`
}

type entry interface {
	record() (records.Record, error)
}

// newEntry returns an empty entry for kind, or false for unknown kinds.
func newEntry(kind records.Kind) (entry, bool) {
	switch kind {
	case records.KindBook:
		return &bookEntry{}, true
	case records.KindInternetResource:
		return &internetResourceEntry{}, true
	case records.KindArticlesCollection:
		return &articlesCollectionEntry{}, true
	case records.KindThesisAbstract:
		return &thesisAbstractEntry{}, true
	case records.KindNewspaperArticle:
		return &newspaperArticleEntry{}, true
	default:
		return nil, false
	}
}

// LoadFile reads a YAML (.yaml, .yml) or CSV (.csv) source file.
func LoadFile(path string) (*Document, error) {
	var (
		doc *Document
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = loadYAMLFile(path)
	case ".csv":
		doc, err = loadCSVFile(path)
	default:
		return nil, fmt.Errorf("unsupported source file type %q (want .yaml, .yml or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Info("Loaded sources", "path", path, "count", len(doc.Records))
	return doc, nil
}

func loadYAMLFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ParseYAML(f)
}

func loadCSVFile(path string) (*Document, error) {
	recs, err := csvutil.ProcessCSV(path, parseRow, csvutil.ProcessorOptions{})
	if err != nil {
		return nil, err
	}
	return &Document{Records: recs}, nil
}

// ParseYAML reads a document with a top-level "sources" sequence. Each item
// carries a "kind" plus the fields of that kind.
func ParseYAML(r io.Reader) (*Document, error) {
	var raw yamlDocument
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc := &Document{
		Style:   strings.TrimSpace(raw.Style),
		Records: make([]records.Record, 0, len(raw.Sources)),
	}
	for i := range raw.Sources {
		rec, err := decodeEntry(&raw.Sources[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		doc.Records = append(doc.Records, rec)
	}
	return doc, nil
}

// ParseCSV reads a CSV document whose header names the record fields and
// whose "kind" column selects the record type. Empty cells are treated as
// absent fields.
func ParseCSV(r io.Reader) (*Document, error) {
	recs, err := csvutil.ProcessReader(r, parseRow, csvutil.ProcessorOptions{})
	if err != nil {
		return nil, err
	}
	return &Document{Records: recs}, nil
}

func parseRow(n int, row csvutil.Row) (records.Record, error) {
	rec, err := decodeEntry(rowNode(row))
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", n, err)
	}
	return rec, nil
}

// rowNode turns a CSV row into the mapping node a YAML entry would produce.
// Plain scalars let yaml resolve numbers the same way for both formats.
func rowNode(row csvutil.Row) *yaml.Node {
	keys := make([]string, 0, len(row))
	for key, value := range row {
		if key != "" && strings.TrimSpace(value) != "" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: row[key]},
		)
	}
	return node
}

func decodeEntry(node *yaml.Node) (records.Record, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	normalize(node)

	var probe struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&probe); err != nil {
		return nil, err
	}
	if probe.Kind == "" {
		return nil, apperrors.NewValidationError("source", "kind", nil, "is required")
	}

	kind := records.Kind(strings.ToLower(probe.Kind))
	e, ok := newEntry(kind)
	if !ok {
		return nil, apperrors.NewValidationError("source", "kind", probe.Kind, "is not a known record kind")
	}

	if err := node.Decode(e); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if err := records.ValidateStruct(kind, e); err != nil {
		return nil, err
	}
	return e.record()
}

// normalize trims scalars and puts them in Unicode NFC so that composed and
// decomposed spellings of the same text render and sort identically.
func normalize(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode {
		node.Value = norm.NFC.String(strings.TrimSpace(node.Value))
		return
	}
	for _, child := range node.Content {
		normalize(child)
	}
}
