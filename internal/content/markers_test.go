package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithMarkers(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "wrap non-empty content",
			content:  "1. Citation",
			expected: "<!-- BIBLIO_DATA_START -->\n1. Citation\n<!-- BIBLIO_DATA_END -->",
		},
		{
			name:     "wrap content with leading/trailing whitespace",
			content:  "  \n  1. Citation  \n  ",
			expected: "<!-- BIBLIO_DATA_START -->\n1. Citation\n<!-- BIBLIO_DATA_END -->",
		},
		{
			name:     "empty content returns empty string",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapWithMarkers(tt.content))
		})
	}
}

func TestHasMarkers(t *testing.T) {
	assert.True(t, HasMarkers("Before\n"+BibliographyStart+"\nx\n"+BibliographyEnd+"\nAfter"))
	assert.False(t, HasMarkers(BibliographyStart+"\nContent"))
	assert.False(t, HasMarkers("Content\n"+BibliographyEnd))
	assert.False(t, HasMarkers(""))
}

func TestGetContent(t *testing.T) {
	got, ok := GetContent("intro\n" + BibliographyStart + "\n  1. A\n2. B \n" + BibliographyEnd)
	assert.True(t, ok)
	assert.Equal(t, "1. A\n2. B", got)

	_, ok = GetContent(BibliographyEnd + "\n" + BibliographyStart)
	assert.False(t, ok)
}

func TestReplaceContent(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name: "keeps user text around markers",
			body: "My notes\n\n" + BibliographyStart + "\nold\n" + BibliographyEnd + "\n\nMore notes",
			expected: "My notes\n\n" + BibliographyStart + "\nnew\n" + BibliographyEnd +
				"\n\nMore notes",
		},
		{
			name:     "appends when markers are missing",
			body:     "Only user text",
			expected: "Only user text\n\n" + BibliographyStart + "\nnew\n" + BibliographyEnd,
		},
		{
			name:     "empty body",
			body:     "",
			expected: BibliographyStart + "\nnew\n" + BibliographyEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceContent(tt.body, "new"))
		})
	}
}
