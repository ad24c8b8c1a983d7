package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/table"
)

func browseFixture() BrowseModel {
	model := table.New(
		[]table.Column{
			{Title: "Código", Width: 8},
			{Title: "Produto", Width: 16},
		},
		[]table.Row{
			{ID: "p1", Cells: []string{"QD-001", "Acetona"}},
			{ID: "p2", Cells: []string{"QD-002", "Etanol"}},
			{ID: "p3", Cells: []string{"QD-003", "Formol"}},
		},
		table.WithPageSize(2),
	)
	return NewBrowseModel("Produtos", model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBrowseModel_CursorMovement(t *testing.T) {
	m := browseFixture()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(BrowseModel)
	if m.cursor != 1 {
		t.Errorf("Expected cursor 1 after down, got %d", m.cursor)
	}

	// Clamped at the last visible row of the page.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(BrowseModel)
	if m.cursor != 1 {
		t.Errorf("Expected cursor clamped at 1, got %d", m.cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(BrowseModel)
	if m.cursor != 0 {
		t.Errorf("Expected cursor 0 after up, got %d", m.cursor)
	}
}

func TestBrowseModel_PageChangeResetsCursor(t *testing.T) {
	m := browseFixture()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(BrowseModel)

	updated, _ = m.Update(keyMsg("n"))
	m = updated.(BrowseModel)

	if m.cursor != 0 {
		t.Errorf("Expected cursor reset on page change, got %d", m.cursor)
	}
	if got := m.model.Page(); got != 1 {
		t.Errorf("Expected page 1, got %d", got)
	}
}

func TestBrowseModel_SelectReturnsRowID(t *testing.T) {
	m := browseFixture()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(BrowseModel)

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(BrowseModel)

	if m.Selected() != "p2" {
		t.Errorf("Expected selected p2, got %q", m.Selected())
	}
	if cmd == nil {
		t.Error("Expected quit command after select")
	}
}

func TestBrowseModel_FilterMode(t *testing.T) {
	m := browseFixture()

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(BrowseModel)
	if !m.filtering {
		t.Fatal("Expected filter mode after /")
	}

	for _, r := range "etanol" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(BrowseModel)
	}
	if got := m.model.TotalRows(); got != 1 {
		t.Errorf("Expected 1 filtered row, got %d", got)
	}

	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(BrowseModel)
	if m.filtering {
		t.Error("Expected filter mode to end on enter")
	}

	// Esc clears the filter entirely.
	updated, _ = m.Update(keyMsg("/"))
	m = updated.(BrowseModel)
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(BrowseModel)
	if got := m.model.TotalRows(); got != 3 {
		t.Errorf("Expected filter cleared, got %d rows", got)
	}
}

func TestBrowseModel_SortCyclesColumns(t *testing.T) {
	m := browseFixture()

	updated, _ := m.Update(keyMsg("s"))
	m = updated.(BrowseModel)
	if m.sortColumn != 0 {
		t.Errorf("Expected sort column 0, got %d", m.sortColumn)
	}

	updated, _ = m.Update(keyMsg("s"))
	m = updated.(BrowseModel)
	if m.sortColumn != 1 {
		t.Errorf("Expected sort column 1, got %d", m.sortColumn)
	}
}

func TestBrowseModel_ViewRendersRowsAndFooter(t *testing.T) {
	m := browseFixture()

	out := m.View()
	if !strings.Contains(out, "Produtos") {
		t.Error("Expected title in view")
	}
	if !strings.Contains(out, "Acetona") || !strings.Contains(out, "Etanol") {
		t.Error("Expected first page rows in view")
	}
	if strings.Contains(out, "Formol") {
		t.Error("Expected second page row to be hidden")
	}
	if !strings.Contains(out, "página 1/2") {
		t.Error("Expected page footer in view")
	}
}

func TestBrowseModel_QuitWithoutSelection(t *testing.T) {
	m := browseFixture()

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(BrowseModel)

	if m.Selected() != "" {
		t.Errorf("Expected no selection, got %q", m.Selected())
	}
	if cmd == nil {
		t.Error("Expected quit command")
	}
}
