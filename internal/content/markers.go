package content

import (
	"strings"
)

const (
	// BibliographyStart is the start marker for generated reference lists
	BibliographyStart = "<!-- BIBLIO_DATA_START -->"
	// BibliographyEnd is the end marker for generated reference lists
	BibliographyEnd = "<!-- BIBLIO_DATA_END -->"
)

// WrapWithMarkers wraps generated content with bibliography markers.
func WrapWithMarkers(content string) string {
	if content == "" {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(BibliographyStart)
	builder.WriteString("\n")
	builder.WriteString(strings.TrimSpace(content))
	builder.WriteString("\n")
	builder.WriteString(BibliographyEnd)
	return builder.String()
}

// HasMarkers checks if a note body contains both bibliography markers.
func HasMarkers(body string) bool {
	return strings.Contains(body, BibliographyStart) &&
		strings.Contains(body, BibliographyEnd)
}

// GetContent extracts the content between bibliography markers.
func GetContent(body string) (string, bool) {
	startIndex := strings.Index(body, BibliographyStart)
	endIndex := strings.Index(body, BibliographyEnd)

	if startIndex == -1 || endIndex == -1 || endIndex <= startIndex {
		return "", false
	}

	start := startIndex + len(BibliographyStart)
	return strings.TrimSpace(body[start:endIndex]), true
}

// ReplaceContent swaps the text between the markers for newContent and keeps
// everything the user wrote around them. A body without markers gets the
// wrapped content appended.
func ReplaceContent(body string, newContent string) string {
	startIdx := strings.Index(body, BibliographyStart)
	endIdx := strings.Index(body, BibliographyEnd)
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		before := strings.TrimSpace(body)
		if before == "" {
			return WrapWithMarkers(newContent)
		}
		return before + "\n\n" + WrapWithMarkers(newContent)
	}

	before := strings.TrimSpace(body[:startIdx])
	after := strings.TrimSpace(body[endIdx+len(BibliographyEnd):])

	var builder strings.Builder
	if before != "" {
		builder.WriteString(before)
		builder.WriteString("\n\n")
	}
	builder.WriteString(BibliographyStart)
	builder.WriteString("\n")
	builder.WriteString(strings.TrimSpace(newContent))
	builder.WriteString("\n")
	builder.WriteString(BibliographyEnd)
	if after != "" {
		builder.WriteString("\n\n")
		builder.WriteString(after)
	}
	return builder.String()
}
