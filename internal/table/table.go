// Package table provides the row model backing the product and user
// listings: stable row identity, text filtering, column sorting and
// pagination, independent of the widget that renders it.
package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Row is a single rendered line. ID is stable for the lifetime of the
// model so selection survives sorting and filtering.
type Row struct {
	ID    string
	Cells []string
}

// Column describes a header and how its cells compare when sorting.
type Column struct {
	Title   string
	Width   int
	Numeric bool
}

// SortDirection orders rows ascending or descending by one column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// Model holds the full row set plus the current view parameters.
// It is not safe for concurrent use; the TUI drives it from a single
// goroutine.
type Model struct {
	columns []Column
	rows    []Row

	filter     string
	sortColumn int
	sortDir    SortDirection

	page     int
	pageSize int
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithPageSize sets how many rows a page holds. Values below 1 disable
// pagination.
func WithPageSize(n int) Option {
	return func(m *Model) {
		m.pageSize = n
	}
}

// New builds a model over the given columns and rows. Rows with an
// empty ID get a generated one so every row stays addressable.
func New(columns []Column, rows []Row, opts ...Option) *Model {
	m := &Model{
		columns:    columns,
		rows:       make([]Row, len(rows)),
		sortColumn: -1,
	}
	copy(m.rows, rows)
	for i := range m.rows {
		if m.rows[i].ID == "" {
			m.rows[i].ID = uuid.NewString()
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Columns returns the column definitions.
func (m *Model) Columns() []Column {
	return m.columns
}

// SetFilter installs a case-insensitive substring filter across all
// cells and resets to the first page.
func (m *Model) SetFilter(query string) {
	m.filter = strings.ToLower(strings.TrimSpace(query))
	m.page = 0
}

// Filter returns the active filter query.
func (m *Model) Filter() string {
	return m.filter
}

// SortBy sorts by the given column. Sorting the same column again
// flips the direction; an out-of-range column clears the sort.
func (m *Model) SortBy(column int) {
	if column < 0 || column >= len(m.columns) {
		m.sortColumn = -1
		m.sortDir = SortNone
		return
	}
	if m.sortColumn == column {
		if m.sortDir == SortAsc {
			m.sortDir = SortDesc
		} else {
			m.sortDir = SortAsc
		}
		return
	}
	m.sortColumn = column
	m.sortDir = SortAsc
}

// NextPage advances one page, clamping at the last page of the current
// view.
func (m *Model) NextPage() {
	if m.pageSize < 1 {
		return
	}
	if (m.page+1)*m.pageSize < len(m.visible()) {
		m.page++
	}
}

// PrevPage goes back one page, clamping at zero.
func (m *Model) PrevPage() {
	if m.page > 0 {
		m.page--
	}
}

// Page returns the zero-based page index.
func (m *Model) Page() int {
	return m.page
}

// PageCount returns how many pages the current view spans. At least 1,
// even when the view is empty.
func (m *Model) PageCount() int {
	if m.pageSize < 1 {
		return 1
	}
	n := len(m.visible())
	if n == 0 {
		return 1
	}
	return (n + m.pageSize - 1) / m.pageSize
}

// TotalRows returns how many rows survive the filter, across all pages.
func (m *Model) TotalRows() int {
	return len(m.visible())
}

// View returns the rows of the current page after filtering and
// sorting.
func (m *Model) View() []Row {
	rows := m.visible()
	if m.pageSize < 1 {
		return rows
	}
	if m.page >= m.PageCount() {
		m.page = m.PageCount() - 1
	}
	start := m.page * m.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + m.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// RowByID finds a row by its stable ID across the whole set, not just
// the visible page.
func (m *Model) RowByID(id string) (Row, bool) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

func (m *Model) visible() []Row {
	rows := m.rows
	if m.filter != "" {
		filtered := make([]Row, 0, len(rows))
		for _, r := range rows {
			if rowMatches(r, m.filter) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	if m.sortDir == SortNone || m.sortColumn < 0 {
		return rows
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	col := m.sortColumn
	numeric := m.columns[col].Numeric
	sort.SliceStable(sorted, func(i, j int) bool {
		less := cellLess(cellAt(sorted[i], col), cellAt(sorted[j], col), numeric)
		if m.sortDir == SortDesc {
			return !less
		}
		return less
	})
	return sorted
}

func rowMatches(r Row, query string) bool {
	for _, cell := range r.Cells {
		if strings.Contains(strings.ToLower(cell), query) {
			return true
		}
	}
	return false
}

func cellAt(r Row, col int) string {
	if col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

func cellLess(a, b string, numeric bool) bool {
	if numeric {
		fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
		fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if errA == nil && errB == nil {
			return fa < fb
		}
	}
	return strings.ToLower(a) < strings.ToLower(b)
}
