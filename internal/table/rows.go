package table

import (
	"strings"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// ProductColumns defines the catalog listing layout.
func ProductColumns() []Column {
	return []Column{
		{Title: "Código", Width: 10},
		{Title: "Produto", Width: 28},
		{Title: "Fornecedor", Width: 20},
		{Title: "Empresa", Width: 16},
		{Title: "Estado físico", Width: 14},
		{Title: "Status", Width: 10},
	}
}

// ProductRows converts products into rows. The row ID comes from the
// product's own identifier; products the server returned without one
// still get a unique row ID when the Model is built.
func ProductRows(products []domain.Product) []Row {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, Row{
			ID: p.EffectiveID(),
			Cells: []string{
				p.Codigo,
				p.NomeDoProduto,
				p.Fornecedor,
				p.Empresa,
				p.EstadoFisico,
				p.Status.String(),
			},
		})
	}
	return rows
}

// UserColumns defines the user management listing layout.
func UserColumns() []Column {
	return []Column{
		{Title: "Usuário", Width: 20},
		{Title: "E-mail", Width: 28},
		{Title: "Nível", Width: 14},
		{Title: "Empresa", Width: 16},
		{Title: "Setor", Width: 14},
	}
}

// UserRows converts users into rows keyed by their identifier.
func UserRows(users []domain.User) []Row {
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, Row{
			ID: u.EffectiveID(),
			Cells: []string{
				u.Username,
				u.Email,
				u.Role.Label(),
				u.Empresa,
				u.Setor,
			},
		})
	}
	return rows
}

// SubstanceSummary collapses a product's substance list into one cell,
// e.g. "Acetona (67-64-1) 30%; Água (7732-18-5)".
func SubstanceSummary(subs []domain.Substance) string {
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.Empty() {
			continue
		}
		part := s.Nome
		if s.CAS != "" {
			part += " (" + s.CAS + ")"
		}
		if s.Concentracao != "" {
			part += " " + s.Concentracao
		}
		parts = append(parts, strings.TrimSpace(part))
	}
	return strings.Join(parts, "; ")
}
