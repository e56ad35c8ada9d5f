package domain

import (
	"strings"
	"time"
)

// Order representa um pedido do portal já normalizado para agregação
type Order struct {
	ID         string `json:"id"`
	Date       string `json:"date"`  // Formato yyyy-mm-dd
	Total      *int64 `json:"total"` // Menor unidade monetária (centavos)
	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
}

// VendorKey identifica o vendedor do pedido, usando o nome quando não há ID
func (o Order) VendorKey() string {
	return entityKey(o.VendorID, o.VendorName)
}

// ClientKey identifica o cliente do pedido, usando o nome quando não há ID
func (o Order) ClientKey() string {
	return entityKey(o.ClientID, o.ClientName)
}

// Layouts aceitos para a data do pedido; registros com hora mantêm apenas o dia como foi escrito
var orderDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02T15:04:05",
}

// ParsedDate retorna a data do pedido e false quando ela não pode ser interpretada
func (o Order) ParsedDate() (time.Time, bool) {
	date := strings.TrimSpace(o.Date)
	if date == "" {
		return time.Time{}, false
	}

	for _, layout := range orderDateLayouts {
		parsed, err := time.Parse(layout, date)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// IsValid indica se o pedido tem os dados mínimos para entrar na agregação
func (o Order) IsValid() bool {
	if _, ok := o.ParsedDate(); !ok {
		return false
	}

	if o.Total == nil || *o.Total < 0 {
		return false
	}

	return o.VendorKey() != "" || o.ClientKey() != ""
}

func entityKey(id, name string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return strings.TrimSpace(name)
}
