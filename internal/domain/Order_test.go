package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_ParsedDate(t *testing.T) {
	july5 := time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected time.Time
		ok       bool
	}{
		{name: "apenas data", date: "2024-07-05", expected: july5, ok: true},
		{name: "RFC3339 mantém o dia escrito", date: "2024-07-05T23:30:00-03:00", expected: july5, ok: true},
		{name: "data e hora separadas por espaço", date: " 2024-07-05 08:30:00 ", expected: july5, ok: true},
		{name: "data e hora sem fuso", date: "2024-07-05T08:30:00", expected: july5, ok: true},
		{name: "sufixo inválido", date: "2024-07-05junk", ok: false},
		{name: "hora inválida", date: "2024-07-05T25:00:00Z", ok: false},
		{name: "formato brasileiro", date: "05/07/2024", ok: false},
		{name: "vazia", date: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := Order{Date: tt.date}.ParsedDate()

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, parsed)
			}
		})
	}
}
