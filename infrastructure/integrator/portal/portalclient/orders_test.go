package portalclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Portal: config.Portal{
			URL:         serverURL + "/api",
			AccessToken: "token-teste",
			Timeout:     5 * time.Second,
		},
	})
}

func TestGetOrders(t *testing.T) {
	t.Run("deve buscar os pedidos do período", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "2024-07-01", r.URL.Query().Get("start"))
			assert.Equal(t, "2024-07-07", r.URL.Query().Get("end"))
			assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1, "date": "2024-07-05", "total": 1000, "vendor": {"id": "v1", "name": "Ana"}, "client": {"id": "c1", "name": "Loja 1"}}]`))
		}))
		defer server.Close()

		orders, err := newTestClient(server.URL).GetOrders(context.Background(), OrdersParams{
			StartDate: "2024-07-01",
			EndDate:   "2024-07-07",
		})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "1", string(orders[0].ID))
		assert.Equal(t, int64(1000), *orders[0].Total.Value)
	})

	t.Run("deve retornar erro quando o status não for 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "indisponível", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		orders, err := newTestClient(server.URL).GetOrders(context.Background(), OrdersParams{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Empty(t, orders)
	})

	t.Run("deve retornar erro quando o corpo não for JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html></html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetOrders(context.Background(), OrdersParams{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decodificar")
	})
}
