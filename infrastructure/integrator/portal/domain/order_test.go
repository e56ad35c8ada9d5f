package portaldomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected *int64
	}{
		{"número", `{"total": 1500}`, int64Ptr(1500)},
		{"string numérica", `{"total": " 2500 "}`, int64Ptr(2500)},
		{"negativo", `{"total": -10}`, int64Ptr(-10)},
		{"null", `{"total": null}`, nil},
		{"ausente", `{}`, nil},
		{"texto inválido", `{"total": "abc"}`, nil},
		{"decimal", `{"total": 10.5}`, nil},
		{"booleano", `{"total": true}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order Order
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &order))
			assert.Equal(t, tt.expected, order.Total.Value)
		})
	}
}

func TestOrderToDomain(t *testing.T) {
	payload := `[
		{"id": 10, "date": "2024-07-05", "total": "1000", "vendor": {"id": 7, "name": " Ana "}, "client": {"id": "c-1", "name": "Perfumaria Sol"}},
		{"id": "p-2", "date": "2024-07-06", "total": "n/a", "vendor": {"id": null, "name": ""}, "client": {"id": "c-2", "name": "Beleza & Cia"}}
	]`

	var orders []Order
	require.NoError(t, json.Unmarshal([]byte(payload), &orders))

	result := ToDomainOrders(orders)
	require.Len(t, result, 2)

	assert.Equal(t, "10", result[0].ID)
	assert.Equal(t, "2024-07-05", result[0].Date)
	assert.Equal(t, int64Ptr(1000), result[0].Total)
	assert.Equal(t, "7", result[0].VendorID)
	assert.Equal(t, "Ana", result[0].VendorName)
	assert.Equal(t, "c-1", result[0].ClientID)

	assert.Equal(t, "p-2", result[1].ID)
	assert.Nil(t, result[1].Total)
	assert.Empty(t, result[1].VendorID)
	assert.False(t, result[1].IsValid())
}
