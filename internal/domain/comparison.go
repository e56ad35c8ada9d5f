package domain

// DailySeriesPoint é um ponto do gráfico diário com um valor por ano selecionado
type DailySeriesPoint struct {
	Day    int              `json:"day"`
	Values map[string]int64 `json:"values"` // Chave: ano (ex: "2024")
}

// YearlyComparison agrupa as séries diárias de vendas e de clientes
type YearlyComparison struct {
	SalesData   []DailySeriesPoint `json:"sales_data"`
	ClientsData []DailySeriesPoint `json:"clients_data"`
}

// AnnualSummary representa o total de vendas de um ano
type AnnualSummary struct {
	Year  string `json:"year"`
	Sales int64  `json:"sales"`
}

// MonthlySummary representa o total de vendas de um mês em um ano
type MonthlySummary struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Sales int64  `json:"sales"`
}
