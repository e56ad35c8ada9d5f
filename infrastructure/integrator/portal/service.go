package portal

import (
	"context"
	"time"

	portaldomain "github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal/domain"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/integrator/portal/portalclient"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type PortalIntegrator interface {
	// GetOrders retorna os pedidos com data entre start e end (inclusive)
	GetOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error)
}

type PortalService struct {
	Client portalclient.Client
}

func New(client portalclient.Client) PortalIntegrator {
	return &PortalService{
		Client: client,
	}
}

func (s *PortalService) GetOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	resp, err := s.Client.GetOrders(ctx, portalclient.OrdersParams{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	return portaldomain.ToDomainOrders(resp), nil
}
