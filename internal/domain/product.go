package domain

import "fmt"

// ProductStatus drives visibility and edit permission for a product
type ProductStatus string

const (
	// StatusPending is the state of a freshly registered product, awaiting approval
	StatusPending ProductStatus = "pendente"
	// StatusApproved makes the product visible in the public catalog
	StatusApproved ProductStatus = "aprovado"
	// StatusRejected removes the product from the approval queue without publishing it
	StatusRejected ProductStatus = "rejeitado"
)

// Validate checks if the status is one of the known values
func (s ProductStatus) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	}
	return fmt.Errorf("unknown product status %q", string(s))
}

// String returns the wire value
func (s ProductStatus) String() string {
	return string(s)
}

// Substance is one chemical component of a product
type Substance struct {
	Nome         string `json:"nome"`
	CAS          string `json:"cas"`
	Concentracao string `json:"concentracao"`
}

// Empty reports whether every field of the substance row is blank
func (s Substance) Empty() bool {
	return s.Nome == "" && s.CAS == "" && s.Concentracao == ""
}

// Product is a registered chemical product with its GHS classification
// and safety data sheet (FDS) attachment metadata.
type Product struct {
	ID      FlexID `json:"id,omitempty"`
	MongoID FlexID `json:"_id,omitempty"`

	Codigo                string      `json:"codigo"`
	NomeDoProduto         string      `json:"nome_do_produto"`
	Fornecedor            string      `json:"fornecedor"`
	Empresa               string      `json:"empresa"`
	EstadoFisico          string      `json:"estado_fisico"`
	LocalDeArmazenamento  string      `json:"local_de_armazenamento"`
	QtadeMaximaArmazenada string      `json:"qtade_maxima_armazenada"`
	Substancias           []Substance `json:"substancias"`

	// GHS hazard classification
	PerigosFisicos      []string `json:"perigos_fisicos"`
	PerigosSaude        []string `json:"perigos_saude"`
	PerigosMeioAmbiente []string `json:"perigos_meio_ambiente"`
	PalavraDePerigo     string   `json:"palavra_de_perigo"`
	Categoria           string   `json:"categoria"`

	Status          ProductStatus `json:"status"`
	CreatedByUserID FlexID        `json:"created_by_user_id,omitempty"`
	CreatedBy       string        `json:"created_by,omitempty"`
	CreatedAt       string        `json:"created_at,omitempty"`

	// FDS attachment
	PDFURL   string `json:"pdf_url,omitempty"`
	PDFS3Key string `json:"pdf_s3_key,omitempty"`
}

// EffectiveID returns the record's id, preferring "id" over "_id"
func (p *Product) EffectiveID() string {
	if p.ID != "" {
		return p.ID.String()
	}
	return p.MongoID.String()
}

// RequiredFieldsMissing returns the names of the required fields that are
// blank; the backend rejects submissions missing any of them, so the
// client blocks before the network call.
func (p *Product) RequiredFieldsMissing() []string {
	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check("nome_do_produto", p.NomeDoProduto)
	check("fornecedor", p.Fornecedor)
	check("empresa", p.Empresa)
	check("estado_fisico", p.EstadoFisico)
	check("local_de_armazenamento", p.LocalDeArmazenamento)
	return missing
}

// PruneSubstances drops substance rows where every field is blank.
// The registration form always shows at least one empty row; the
// backend should not receive it.
func (p *Product) PruneSubstances() {
	kept := p.Substancias[:0]
	for _, s := range p.Substancias {
		if !s.Empty() {
			kept = append(kept, s)
		}
	}
	p.Substancias = kept
}
