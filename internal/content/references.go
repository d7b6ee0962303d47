// Package content builds the generated markdown sections of bibliography notes.
package content

import (
	"fmt"
	"strings"
)

// BuildReferenceList renders citations as a markdown list. Numbered lists
// use explicit positions so the order survives any markdown renderer.
func BuildReferenceList(citations []string, numbered bool) string {
	if len(citations) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, text := range citations {
		if numbered {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, text)
		} else {
			fmt.Fprintf(&sb, "- %s\n", text)
		}
	}
	return sb.String()
}

// BuildReferenceSection renders a "## References" heading followed by the list.
func BuildReferenceSection(heading string, citations []string, numbered bool) string {
	list := BuildReferenceList(citations, numbered)
	if list == "" {
		return ""
	}
	if heading == "" {
		heading = "References"
	}
	return "## " + heading + "\n\n" + list
}
