package portaldomain

import (
	"strconv"
	"strings"

	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

// Order é o pedido como entregue pela API do portal
type Order struct {
	ID     FlexString `json:"id"`
	Date   string     `json:"date"`
	Status string     `json:"status,omitempty"`
	Total  Amount     `json:"total"`
	Vendor Party      `json:"vendor"`
	Client Party      `json:"client"`
}

type Party struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// Amount aceita número, string numérica ou null. Qualquer outro valor vira nil
// em vez de invalidar o lote inteiro.
type Amount struct {
	Value *int64
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Value = parseAmount(data)
	return nil
}

func parseAmount(data []byte) *int64 {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	return &value
}

// FlexString aceita identificadores numéricos ou texto
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	*f = FlexString(strings.TrimSpace(raw))
	return nil
}

func (o Order) ToDomain() domain.Order {
	return domain.Order{
		ID:         string(o.ID),
		Date:       strings.TrimSpace(o.Date),
		Total:      o.Total.Value,
		VendorID:   string(o.Vendor.ID),
		VendorName: strings.TrimSpace(o.Vendor.Name),
		ClientID:   string(o.Client.ID),
		ClientName: strings.TrimSpace(o.Client.Name),
	}
}

func ToDomainOrders(orders []Order) []domain.Order {
	result := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, order.ToDomain())
	}
	return result
}
