package domain

import "time"

type VendorRankingResponse struct {
	Ranking    []VendorRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

type VendorRankingItem struct {
	ID               int       `json:"id"`
	VendorID         string    `json:"vendor_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	VendorName       string    `json:"vendor_name"`
	Sales            int64     `json:"sales"`
	OrdersCount      int       `json:"orders_count"`
	ClientsCount     int       `json:"clients_count"`
	SalesShare       float64   `json:"sales_share"` // Percentual das vendas do mês
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
