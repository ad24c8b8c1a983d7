package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

func TestFromGroups_SortsByCountDescending(t *testing.T) {
	s := FromGroups("Produtos por status", []domain.GroupCount{
		{Key: "pendente", Count: 3},
		{Key: "aprovado", Count: 10},
		{Key: "rejeitado", Count: 1},
	})

	require.Len(t, s.Points, 3)
	assert.Equal(t, "aprovado", s.Points[0].Label)
	assert.Equal(t, "pendente", s.Points[1].Label)
	assert.Equal(t, "rejeitado", s.Points[2].Label)
	assert.Equal(t, 14, s.Total())
	assert.Equal(t, 10, s.Max())
}

func TestFromGroups_TiesBreakByLabel(t *testing.T) {
	s := FromGroups("Produtos por empresa", []domain.GroupCount{
		{Key: "Química B", Count: 5},
		{Key: "Química A", Count: 5},
	})

	assert.Equal(t, "Química A", s.Points[0].Label)
	assert.Equal(t, "Química B", s.Points[1].Label)
}

func TestFromGroups_EmptyKeyLabeled(t *testing.T) {
	s := FromGroups("Classificação de perigo", []domain.GroupCount{
		{Key: "", Count: 2},
	})
	assert.Equal(t, "(sem valor)", s.Points[0].Label)
}

func TestFromPictograms_PrefersPictogramaField(t *testing.T) {
	s := FromPictograms("Pictogramas", []domain.PictogramCount{
		{Pictograma: "Corrosivo", Count: 4},
		{Key: "Inflamável", Count: 7},
	})

	require.Len(t, s.Points, 2)
	assert.Equal(t, "Inflamável", s.Points[0].Label)
	assert.Equal(t, "Corrosivo", s.Points[1].Label)
}

func TestFromPictograms_ReadsLegacyCountField(t *testing.T) {
	s := FromPictograms("Pictogramas", []domain.PictogramCount{
		{Key: "Tóxico", AltCount: 2},
		{Pictograma: "Corrosivo", Count: 5},
	})

	require.Len(t, s.Points, 2)
	assert.Equal(t, 5, s.Points[0].Value)
	assert.Equal(t, 2, s.Points[1].Value)
}

func TestFromStorage_FlattensCompanyState(t *testing.T) {
	s := FromStorage("Armazenamento", []domain.CompanyStorage{
		{
			Empresa: "Química A",
			DadosPorEstado: []domain.StateQuantity{
				{EstadoFisico: "líquido", Quantidade: 12},
				{EstadoFisico: "sólido", Quantidade: 3},
			},
		},
		{
			Empresa: "Química B",
			DadosPorEstado: []domain.StateQuantity{
				{EstadoFisico: "líquido", Quantidade: 8},
			},
		},
	})

	require.Len(t, s.Points, 3)
	assert.Equal(t, "Química A — líquido", s.Points[0].Label)
	assert.Equal(t, 12, s.Points[0].Value)
	assert.Equal(t, "Química B — líquido", s.Points[1].Label)
}

func TestAllSeries_CoversEveryGrouping(t *testing.T) {
	stats := &domain.DashboardStats{
		ProductsByStatus:        []domain.GroupCount{{Key: "aprovado", Count: 1}},
		UsersByRole:             []domain.GroupCount{{Key: "analista", Count: 2}},
		ProductsByCompany:       []domain.GroupCount{{Key: "Química A", Count: 1}},
		ProductsByPictogram:     []domain.PictogramCount{{Pictograma: "Tóxico", Count: 1}},
		ProductsByPhysicalState: []domain.GroupCount{{Key: "líquido", Count: 1}},
		DangerClassification:    []domain.GroupCount{{Key: "Perigo", Count: 1}},
		StorageByCompanyState: []domain.CompanyStorage{
			{Empresa: "Química A", DadosPorEstado: []domain.StateQuantity{{EstadoFisico: "líquido", Quantidade: 1}}},
		},
	}

	series := AllSeries(stats)
	require.Len(t, series, 7)
	for _, s := range series {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Points, s.Title)
	}
}

func TestRender_ScalesBarsToMax(t *testing.T) {
	s := Series{
		Title: "Produtos por status",
		Points: []Point{
			{Label: "aprovado", Value: 10},
			{Label: "pendente", Value: 5},
			{Label: "rejeitado", Value: 1},
		},
	}

	out := Render(s, 20, DefaultStyles())

	rowFor := func(label string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, label) {
				return line
			}
		}
		t.Fatalf("no rendered row for %q", label)
		return ""
	}

	assert.Equal(t, 20, strings.Count(rowFor("aprovado"), "█"))
	assert.Equal(t, 10, strings.Count(rowFor("pendente"), "█"))
	// The smallest non-zero value still gets a visible bar.
	assert.Equal(t, 1, strings.Count(rowFor("rejeitado"), "█"))
}

func TestRender_EmptySeries(t *testing.T) {
	out := Render(Series{Title: "Pictogramas"}, 20, DefaultStyles())
	assert.Contains(t, out, "(sem dados)")
}
