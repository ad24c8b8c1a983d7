// Package dashboard turns the aggregation payload from /dashboard/stats
// into chart series and renders them as terminal bar charts.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// Point is one labeled bar of a series.
type Point struct {
	Label string
	Value int
}

// Series is a titled set of points, ordered for display.
type Series struct {
	Title  string
	Points []Point
}

// Total sums the series values.
func (s Series) Total() int {
	total := 0
	for _, p := range s.Points {
		total += p.Value
	}
	return total
}

// Max returns the largest value in the series, zero when empty.
func (s Series) Max() int {
	max := 0
	for _, p := range s.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// FromGroups builds a series from a grouped aggregation, sorted by
// count descending with label as the tiebreaker. Buckets the pipeline
// emitted with an empty key are labeled "(sem valor)".
func FromGroups(title string, groups []domain.GroupCount) Series {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{Label: orUnlabeled(g.Key), Value: g.Count})
	}
	sortPoints(points)
	return Series{Title: title, Points: points}
}

// FromPictograms builds the GHS pictogram series. The backend has
// carried both the label and the count under two different field names
// over time; Label and Quantity resolve whichever is set.
func FromPictograms(title string, groups []domain.PictogramCount) Series {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{Label: orUnlabeled(g.Label()), Value: g.Quantity()})
	}
	sortPoints(points)
	return Series{Title: title, Points: points}
}

// FromStorage flattens the company×physical-state grouping into one
// series with "Empresa — estado" labels.
func FromStorage(title string, storage []domain.CompanyStorage) Series {
	var points []Point
	for _, company := range storage {
		for _, st := range company.DadosPorEstado {
			label := fmt.Sprintf("%s — %s", orUnlabeled(company.Empresa), orUnlabeled(st.EstadoFisico))
			points = append(points, Point{Label: label, Value: st.Quantidade})
		}
	}
	sortPoints(points)
	return Series{Title: title, Points: points}
}

// AllSeries produces every chart of the stats payload in display order.
func AllSeries(stats *domain.DashboardStats) []Series {
	return []Series{
		FromGroups("Produtos por status", stats.ProductsByStatus),
		FromGroups("Usuários por nível", stats.UsersByRole),
		FromGroups("Produtos por empresa", stats.ProductsByCompany),
		FromPictograms("Produtos por pictograma GHS", stats.ProductsByPictogram),
		FromGroups("Produtos por estado físico", stats.ProductsByPhysicalState),
		FromGroups("Classificação de perigo", stats.DangerClassification),
		FromStorage("Armazenamento por empresa e estado", stats.StorageByCompanyState),
	}
}

func sortPoints(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
}

func orUnlabeled(label string) string {
	if strings.TrimSpace(label) == "" {
		return "(sem valor)"
	}
	return label
}

// Styles contains the lipgloss styles for chart rendering.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Bar   lipgloss.Style
	Value lipgloss.Style
	Empty lipgloss.Style
}

// DefaultStyles returns the default chart styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
	}
}

// Render draws the series as a horizontal bar chart. barWidth is the
// width in cells of the longest bar; every other bar scales to it.
func Render(s Series, barWidth int, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(s.Title))
	b.WriteString("\n")

	if len(s.Points) == 0 {
		b.WriteString(styles.Empty.Render("  (sem dados)"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	for _, p := range s.Points {
		if w := lipgloss.Width(p.Label); w > labelWidth {
			labelWidth = w
		}
	}

	max := s.Max()
	for _, p := range s.Points {
		bar := barFor(p.Value, max, barWidth)
		fmt.Fprintf(&b, "  %s  %s %s\n",
			styles.Label.Render(padRight(p.Label, labelWidth)),
			styles.Bar.Render(bar),
			styles.Value.Render(fmt.Sprintf("%d", p.Value)),
		)
	}
	return b.String()
}

func barFor(value, max, barWidth int) string {
	if max <= 0 || value <= 0 || barWidth <= 0 {
		return ""
	}
	n := value * barWidth / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
