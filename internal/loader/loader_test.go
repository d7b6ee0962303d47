package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/testutil"
)

func TestLoadFile_YAML(t *testing.T) {
	doc, err := LoadFile("testdata/sources.yaml")
	require.NoError(t, err)

	assert.Equal(t, "apa", doc.Style)
	assert.Equal(t, testutil.MixedFixtures(), doc.Records)
}

func TestLoadFile_CSV(t *testing.T) {
	doc, err := LoadFile("testdata/sources.csv")
	require.NoError(t, err)

	assert.Empty(t, doc.Style)
	assert.Equal(t, testutil.MixedFixtures(), doc.Records)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadFile("testdata/sources.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported source file type ".txt"`)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load testdata/missing.yaml")
}

func TestParseYAML_Empty(t *testing.T) {
	doc, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
}

func TestParseYAML_NormalizesText(t *testing.T) {
	// "й" written as "и" followed by a combining breve.
	input := "sources:\n" +
		"  - kind: internet_resource\n" +
		"    article: \"  Мои\u0306 сайт  \"\n" +
		"    website: Сайт\n" +
		"    link: https://example.com\n" +
		"    access_date: 01.01.2021\n"

	doc, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)

	ir := doc.Records[0].(records.InternetResource)
	assert.Equal(t, "Мой сайт", ir.Article)
	assert.Equal(t, "01.01.2021", ir.AccessDate)
}

func TestParseYAML_KindIsCaseInsensitive(t *testing.T) {
	input := "sources:\n" +
		"  - kind: Internet_Resource\n" +
		"    article: A\n" +
		"    website: B\n" +
		"    link: C\n" +
		"    access_date: D\n"

	doc, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, records.KindInternetResource, doc.Records[0].Kind())
}

func TestParseYAML_Errors(t *testing.T) {
	book := func(extra string) string {
		return "sources:\n" +
			"  - kind: internet_resource\n" +
			"    article: A\n" +
			"    website: B\n" +
			"    link: C\n" +
			"    access_date: D\n" +
			"  - kind: book\n" +
			"    authors: X\n" +
			"    city: Y\n" +
			"    publisher: Z\n" +
			extra
	}

	testCases := []struct {
		name         string
		input        string
		wantErr      string
		isValidation bool
	}{
		{
			name:         "missing required text",
			input:        book("    year: 2020\n    pages: 10\n"),
			wantErr:      "entry 2: book: title is required",
			isValidation: true,
		},
		{
			name:         "blank required text",
			input:        book("    title: \"   \"\n    year: 2020\n    pages: 10\n"),
			wantErr:      "entry 2: book: title is required",
			isValidation: true,
		},
		{
			name:         "non-positive number",
			input:        book("    title: T\n    year: 2020\n    pages: 0\n"),
			wantErr:      "entry 2: book: pages must be a positive integer (got 0)",
			isValidation: true,
		},
		{
			name:         "missing number",
			input:        book("    title: T\n    pages: 10\n"),
			wantErr:      "entry 2: book: year must be a positive integer (got 0)",
			isValidation: true,
		},
		{
			name:    "number is not numeric",
			input:   book("    title: T\n    year: soon\n    pages: 10\n"),
			wantErr: "entry 2: book: yaml: unmarshal errors",
		},
		{
			name:         "missing kind",
			input:        "sources:\n  - title: T\n",
			wantErr:      "entry 1: source: kind is required",
			isValidation: true,
		},
		{
			name:         "unknown kind",
			input:        "sources:\n  - kind: pamphlet\n",
			wantErr:      "entry 1: source: kind is not a known record kind (got pamphlet)",
			isValidation: true,
		},
		{
			name:    "entry is not a mapping",
			input:   "sources:\n  - just text\n",
			wantErr: "entry 1: line 2: expected a mapping",
		},
		{
			name:    "malformed document",
			input:   "sources: [unclosed\n",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Equal(t, tc.isValidation, apperrors.IsValidationError(err))
		})
	}
}

func TestParseCSV_EmptyCellsAreAbsent(t *testing.T) {
	input := "kind,authors,title,edition,city,publisher,year,pages\n" +
		"book,A,T,,C,P,2001,12\n"

	doc, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []records.Record{records.Book{
		Authors:   "A",
		Title:     "T",
		City:      "C",
		Publisher: "P",
		Year:      2001,
		Pages:     12,
	}}, doc.Records)
}

func TestParseCSV_HeaderIsCaseInsensitive(t *testing.T) {
	input := "Kind, Article ,WEBSITE,Link,Access_Date\n" +
		"internet_resource,A,B,C,D\n"

	doc, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []records.Record{records.InternetResource{
		Article:    "A",
		Website:    "B",
		Link:       "C",
		AccessDate: "D",
	}}, doc.Records)
}

func TestParseCSV_ReportsRow(t *testing.T) {
	input := "kind,article,website,link,access_date\n" +
		"internet_resource,A,B,C,D\n" +
		"internet_resource,A,,C,D\n"

	_, err := ParseCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 2: internet_resource: website is required")
	assert.True(t, apperrors.IsValidationError(err))
}

func TestParseCSV_MissingKindColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("title\nT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1: source: kind is required")
}
