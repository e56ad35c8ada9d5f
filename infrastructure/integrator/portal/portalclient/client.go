package portalclient

import (
	"context"
	"net/http"

	portaldomain "github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal/domain"
	"github.com/vfg2006/cosmetics-portal-api/internal/config"
)

type Client interface {
	GetOrders(ctx context.Context, params OrdersParams) (OrdersResponse, error)
}

type PortalClient struct {
	httpClient *http.Client
	config     config.Portal
}

// NewClient cria um cliente HTTP para a API de pedidos do portal
func NewClient(cfg *config.Config) Client {
	return &PortalClient{
		httpClient: &http.Client{
			Timeout: cfg.Portal.Timeout,
		},
		config: cfg.Portal,
	}
}

type OrdersResponse []portaldomain.Order
