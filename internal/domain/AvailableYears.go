package domain

// AvailableYears representa os anos com pedidos disponíveis para comparação
type AvailableYears struct {
	Years []string `json:"years"` // Lista de anos únicos em ordem crescente
}
