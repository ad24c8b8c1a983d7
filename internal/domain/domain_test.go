package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"string id", `"68a1f0c2"`, "68a1f0c2", false},
		{"numeric id", `42`, "42", false},
		{"null id", `null`, "", false},
		{"object id", `{"oid":"x"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestUser_EffectiveID(t *testing.T) {
	u := &User{MongoID: "abc"}
	assert.Equal(t, "abc", u.EffectiveID())

	u.ID = "def"
	assert.Equal(t, "def", u.EffectiveID())
}

func TestRole_Validate(t *testing.T) {
	for _, r := range AllRoles() {
		assert.NoError(t, r.Validate())
	}
	assert.Error(t, Role("gerente").Validate())
	assert.Error(t, Role("").Validate())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("Analista")
	require.NoError(t, err)
	assert.Equal(t, RoleAnalyst, r)

	_, err = ParseRole("root")
	require.Error(t, err)
}

func TestProduct_RequiredFieldsMissing(t *testing.T) {
	p := &Product{
		NomeDoProduto: "Ácido Sulfúrico",
		Fornecedor:    "Química Brasil",
	}

	missing := p.RequiredFieldsMissing()
	assert.ElementsMatch(t, []string{"empresa", "estado_fisico", "local_de_armazenamento"}, missing)

	p.Empresa = "UNIPAC"
	p.EstadoFisico = "Líquido"
	p.LocalDeArmazenamento = "Tancagem"
	assert.Empty(t, p.RequiredFieldsMissing())
}

func TestProduct_PruneSubstances(t *testing.T) {
	p := &Product{
		Substancias: []Substance{
			{Nome: "Água", CAS: "7732-18-5", Concentracao: "60%"},
			{},
			{CAS: "7664-93-9"},
			{},
		},
	}

	p.PruneSubstances()
	require.Len(t, p.Substancias, 2)
	assert.Equal(t, "Água", p.Substancias[0].Nome)
	assert.Equal(t, "7664-93-9", p.Substancias[1].CAS)
}

func TestProduct_UnmarshalNumericID(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"_id": 1234, "nome_do_produto": "Acetona"}`), &p))
	assert.Equal(t, "1234", p.EffectiveID())
}

func TestDashboardStats_Unmarshal(t *testing.T) {
	payload := `{
		"total_products": 12,
		"last_approved_product": "Acetona",
		"total_users": 4,
		"last_registered_user": "douglas",
		"products_by_status": [{"_id": "aprovado", "count": 7}, {"_id": "pendente", "count": 5}],
		"products_by_pictogram": [{"pictograma": "inflamavel", "quantidade_produtos": 3}],
		"storage_by_company_and_state": [
			{"empresa": "UNIPAC", "dados_por_estado": [{"estado_fisico": "LÍQUIDO", "quantidade": 10}]}
		]
	}`

	var stats DashboardStats
	require.NoError(t, json.Unmarshal([]byte(payload), &stats))
	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, "aprovado", stats.ProductsByStatus[0].Key)
	assert.Equal(t, "inflamavel", stats.ProductsByPictogram[0].Label())
	assert.Equal(t, 10, stats.StorageByCompanyState[0].DadosPorEstado[0].Quantidade)
}

func TestPictogramCount_QuantityFallsBackToCountField(t *testing.T) {
	var groups []PictogramCount
	payload := `[
		{"pictograma": "Inflamável", "quantidade_produtos": 3},
		{"_id": "Tóxico", "count": 2}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &groups))

	assert.Equal(t, 3, groups[0].Quantity())
	assert.Equal(t, 2, groups[1].Quantity())
}
