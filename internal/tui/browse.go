package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/table"
)

// browseKeys defines the keyboard shortcuts of the browser.
type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Sort   key.Binding
	Filter key.Binding
	Select key.Binding
	Quit   key.Binding
}

var browseKeyMap = browseKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
	Next:   key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "próxima página")),
	Prev:   key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "página anterior")),
	Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ordenar")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filtrar")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "selecionar")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "sair")),
}

// BrowseModel is the bubbletea model that pages through a table.
type BrowseModel struct {
	title string
	model *table.Model

	cursor     int
	sortColumn int

	filtering   bool
	filterInput string

	selected string // row ID picked with enter
	quitting bool

	width  int
	styles Styles
}

// NewBrowseModel builds a browser over the given table model.
func NewBrowseModel(title string, model *table.Model) BrowseModel {
	return BrowseModel{
		title:      title,
		model:      model,
		sortColumn: -1,
		styles:     DefaultStyles(),
	}
}

// Selected returns the ID of the row picked with enter, or "".
func (m BrowseModel) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m BrowseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
	case "esc":
		m.filtering = false
		m.filterInput = ""
		m.model.SetFilter("")
		m.cursor = 0
	case "backspace":
		if len(m.filterInput) > 0 {
			runes := []rune(m.filterInput)
			m.filterInput = string(runes[:len(runes)-1])
			m.model.SetFilter(m.filterInput)
			m.cursor = 0
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filterInput += string(msg.Runes)
			m.model.SetFilter(m.filterInput)
			m.cursor = 0
		}
	}
	return m, nil
}

func (m BrowseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, browseKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, browseKeyMap.Down):
		if m.cursor < len(m.model.View())-1 {
			m.cursor++
		}

	case key.Matches(msg, browseKeyMap.Next):
		m.model.NextPage()
		m.cursor = 0

	case key.Matches(msg, browseKeyMap.Prev):
		m.model.PrevPage()
		m.cursor = 0

	case key.Matches(msg, browseKeyMap.Sort):
		m.sortColumn = (m.sortColumn + 1) % len(m.model.Columns())
		m.model.SortBy(m.sortColumn)
		m.cursor = 0

	case key.Matches(msg, browseKeyMap.Filter):
		m.filtering = true

	case key.Matches(msg, browseKeyMap.Select):
		rows := m.model.View()
		if m.cursor < len(rows) {
			m.selected = rows[m.cursor].ID
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	columns := m.model.Columns()
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = padCell(col.Title, col.Width)
	}
	b.WriteString(m.styles.Header.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	rows := m.model.View()
	if len(rows) == 0 {
		b.WriteString(m.styles.Muted.Render("  (nenhum registro)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		cells := make([]string, len(columns))
		for c, col := range columns {
			cell := ""
			if c < len(row.Cells) {
				cell = row.Cells[c]
			}
			cells[c] = padCell(cell, col.Width)
		}
		line := strings.Join(cells, "  ")
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("página %d/%d — %d registros", m.model.Page()+1, m.model.PageCount(), m.model.TotalRows())
	if m.filtering {
		footer = "filtro: " + m.filterInput + "▌"
	} else if m.model.Filter() != "" {
		footer += fmt.Sprintf(" — filtro: %q", m.model.Filter())
	}
	b.WriteString(m.styles.Muted.Render(footer))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ navegar • ←/→ páginas • s ordenar • / filtrar • enter selecionar • q sair"))
	b.WriteString("\n")

	return b.String()
}

// Browse runs the browser and returns the selected row ID, or "" when
// the user quit without selecting.
func Browse(title string, model *table.Model) (string, error) {
	p := tea.NewProgram(NewBrowseModel(title, model))
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run browser: %w", err)
	}
	m, ok := finalModel.(BrowseModel)
	if !ok {
		return "", fmt.Errorf("invalid final model type")
	}
	return m.selected, nil
}

func padCell(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= 0 {
		return s
	}
	if w > width {
		runes := []rune(s)
		if width > 1 && len(runes) > width {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:min(len(runes), width)])
	}
	return s + strings.Repeat(" ", width-w)
}
