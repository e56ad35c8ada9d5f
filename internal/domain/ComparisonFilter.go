package domain

// Dimension é o eixo de entidades usado para agrupar e filtrar pedidos
type Dimension string

const (
	DimensionVendor Dimension = "vendor"
	DimensionClient Dimension = "client"
)

// AllEntities seleciona todas as entidades da dimensão
const AllEntities = "all"

func (d Dimension) IsValid() bool {
	return d == DimensionVendor || d == DimensionClient
}

// ComparisonFilter representa a seleção feita na tela de comparação anual
type ComparisonFilter struct {
	SelectedMonth string    `json:"selected_month"` // Formato mm (01-12), apenas na visão diária
	SelectedYears []string  `json:"selected_years"`
	Dimension     Dimension `json:"dimension"`
	SelectedID    string    `json:"selected_id"` // "all" ou o ID de um vendedor/cliente
}

// IsAllSelected indica se o filtro não restringe nenhuma entidade
func (f ComparisonFilter) IsAllSelected() bool {
	return f.SelectedID == "" || f.SelectedID == AllEntities
}
