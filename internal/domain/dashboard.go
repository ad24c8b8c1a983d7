package domain

// GroupCount is one bucket of a grouped aggregation, keyed by the
// grouping value under "_id" as the backend's pipeline emits it.
type GroupCount struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}

// PictogramCount is one bucket of the GHS pictogram aggregation
type PictogramCount struct {
	Pictograma string `json:"pictograma"`
	Key        string `json:"_id,omitempty"`
	Count      int    `json:"quantidade_produtos"`
	AltCount   int    `json:"count,omitempty"`
}

// Label returns the pictogram name, whichever field carried it
func (p PictogramCount) Label() string {
	if p.Pictograma != "" {
		return p.Pictograma
	}
	return p.Key
}

// Quantity returns the bucket count. Older backend responses carried
// it under "count" instead of "quantidade_produtos".
func (p PictogramCount) Quantity() int {
	if p.Count != 0 {
		return p.Count
	}
	return p.AltCount
}

// StateQuantity is a physical-state bucket inside a company grouping
type StateQuantity struct {
	EstadoFisico string `json:"estado_fisico"`
	Quantidade   int    `json:"quantidade"`
}

// CompanyStorage groups stored quantities by physical state for one company
type CompanyStorage struct {
	Empresa        string          `json:"empresa"`
	DadosPorEstado []StateQuantity `json:"dados_por_estado"`
}

// DashboardStats is the aggregate payload of GET /dashboard/stats
type DashboardStats struct {
	TotalProducts       int    `json:"total_products"`
	LastApprovedProduct string `json:"last_approved_product"`
	TotalUsers          int    `json:"total_users"`
	LastRegisteredUser  string `json:"last_registered_user"`

	ProductsByStatus        []GroupCount     `json:"products_by_status"`
	UsersByRole             []GroupCount     `json:"users_by_role"`
	ProductsByCompany       []GroupCount     `json:"products_by_company"`
	ProductsByPictogram     []PictogramCount `json:"products_by_pictogram"`
	ProductsByPhysicalState []GroupCount     `json:"products_by_physical_state"`
	DangerClassification    []GroupCount     `json:"danger_classification"`
	StorageByCompanyState   []CompanyStorage `json:"storage_by_company_and_state"`
}
