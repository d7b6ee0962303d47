// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/biblio/internal/styles"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 16
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user picked a style.
	ActionSelected
	// ActionSkipped indicates the user kept the default style.
	ActionSkipped
	// ActionStopped indicates the user stopped processing entirely.
	ActionStopped
)

// StyleChoice is one entry of the style picker.
type StyleChoice struct {
	Style styles.Style
	// Kinds is the number of record kinds the style can render
	Kinds int
	// Preview is the first citation of the list rendered in this style
	Preview string
}

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action SelectionAction
	Style  styles.Style
}

type styleItem struct {
	StyleChoice
}

func (i styleItem) Title() string       { return strings.ToUpper(i.Style.String()) }
func (i styleItem) FilterValue() string { return i.Style.String() }
func (i styleItem) Description() string { return i.Preview }

type itemStyles struct {
	normal       lipgloss.Style
	selected     lipgloss.Style
	nameStyle    lipgloss.Style
	kindsStyle   lipgloss.Style
	previewStyle lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		nameStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		kindsStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		previewStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")),
	}
}

type styleDelegate struct {
	styles itemStyles
}

func newDelegate() styleDelegate {
	return styleDelegate{styles: newItemStyles()}
}

func (d styleDelegate) Height() int                         { return 4 }
func (d styleDelegate) Spacing() int                        { return 1 }
func (d styleDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d styleDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	choice, ok := item.(styleItem)
	if !ok {
		return
	}

	nameLine := d.styles.nameStyle.Render(fmt.Sprintf("[%s]", choice.Title()))
	kindsLine := d.styles.kindsStyle.Render(fmt.Sprintf("%d record kinds", choice.Kinds))
	previewLine := d.styles.previewStyle.Render(truncate(choice.Preview, m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, nameLine, kindsLine, previewLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list   list.Model
	source string
	result SelectionResult
}

func newModel(source string, items []styleItem, initial int) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()
	l.Select(initial)

	return &model{
		list:   l,
		source: source,
		result: SelectionResult{Action: ActionNone},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(styleItem); ok {
				m.result = SelectionResult{Action: ActionSelected, Style: selected.Style}
				return m, tea.Quit
			}
		case "s":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.result = SelectionResult{Action: ActionStopped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Choose a citation style for: %s", m.source))
	help := helpStyle.Render("Up/Down navigate | Enter select | s keep default | q stop")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// SelectStyle lets the user pick one of choices. The cursor starts on the
// choice whose style equals current.
func SelectStyle(source string, choices []StyleChoice, current styles.Style) (SelectionResult, error) {
	if len(choices) == 0 {
		return SelectionResult{Action: ActionSkipped}, nil
	}

	items := make([]styleItem, len(choices))
	initial := 0
	for i, choice := range choices {
		items[i] = styleItem{StyleChoice: choice}
		if choice.Style == current {
			initial = i
		}
	}

	finalModel, err := runProgram(newModel(source, items, initial))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

// truncate collapses whitespace and cuts value to width runes.
func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	runes := []rune(value)
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
