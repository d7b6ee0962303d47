package bibliography

import (
	"fmt"
	"os"

	"github.com/lepinkainen/biblio/internal/content"
	"github.com/lepinkainen/biblio/internal/fileutil"
	"github.com/lepinkainen/biblio/internal/obsidian"
	"github.com/lepinkainen/biblio/internal/styles"
)

const defaultNoteTitle = "References"

type noteParams struct {
	Title    string
	Heading  string
	Source   string
	Style    styles.Style
	Numbered bool
}

// writeMarkdown writes the list as an Obsidian note. When the note already
// exists and overwrite is set, only the generated section is replaced and
// the user's text and tags are kept.
func writeMarkdown(list []Citation, p noteParams, directory string, overwrite bool) error {
	title := p.Title
	if title == "" {
		title = defaultNoteTitle
	}
	filePath := fileutil.GetMarkdownFilePath(title, directory)

	var (
		body         string
		existingTags []string
	)
	if overwrite && fileutil.FileExists(filePath) {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read existing note: %w", err)
		}
		existing, err := obsidian.ParseMarkdown(data)
		if err != nil {
			return fmt.Errorf("failed to parse existing note %s: %w", filePath, err)
		}
		body = existing.Body
		existingTags = existing.Frontmatter.GetStringArray("tags")
	}

	fm := obsidian.NewFrontmatterWithTitle(title)
	fm.Set("type", "bibliography")
	fm.Set("style", p.Style.String())
	fm.Set("count", len(list))
	if p.Source != "" {
		fm.Set("source", p.Source)
	}

	tags := obsidian.NewTagSet()
	tags.Add("bibliography")
	tags.AddFormat("style/%s", p.Style)
	fm.Set("tags", obsidian.MergeTags(existingTags, tags.GetSorted()))

	section := content.BuildReferenceList(texts(list), p.Numbered)
	if p.Heading != "" {
		section = content.BuildReferenceSection(p.Heading, texts(list), p.Numbered)
	}
	body = content.ReplaceContent(body, section)

	data, err := obsidian.BuildNoteMarkdown(fm, body)
	if err != nil {
		return fmt.Errorf("failed to build markdown note: %w", err)
	}

	_, err = fileutil.WriteMarkdownFile(filePath, data, overwrite)
	return err
}
