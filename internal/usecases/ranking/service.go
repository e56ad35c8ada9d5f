package ranking

import (
	"context"
	"time"

	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

type RankingService interface {
	GetVendorRanking(ctx context.Context, month string) (*domain.VendorRankingResponse, error)
	// GetVendorPosition retorna a posição de um vendedor no mês; nil quando ele não pontuou
	GetVendorPosition(ctx context.Context, vendorID, month string) (*domain.VendorRankingItem, error)
}

type VendorRankingService struct {
	VendorRankingRepository repository.VendorRankingRepository
	now                     func() time.Time
}

func NewVendorRankingService(vendorRankingRepository repository.VendorRankingRepository) RankingService {
	return &VendorRankingService{
		VendorRankingRepository: vendorRankingRepository,
		now:                     time.Now,
	}
}

// GetVendorRanking retorna o ranking do mês informado (mm-yyyy); vazio usa o mês de ontem
func (s *VendorRankingService) GetVendorRanking(ctx context.Context, month string) (*domain.VendorRankingResponse, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	return s.VendorRankingRepository.GetVendorRanking(ctx, month)
}

func (s *VendorRankingService) GetVendorPosition(ctx context.Context, vendorID, month string) (*domain.VendorRankingItem, error) {
	if vendorID == "" {
		return nil, ErrMissingVendor
	}

	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	return s.VendorRankingRepository.GetByVendorID(ctx, vendorID, month)
}

func (s *VendorRankingService) resolveMonth(month string) (string, error) {
	if month == "" {
		return s.now().AddDate(0, 0, -1).Format(MonthLayout), nil
	}

	if _, err := time.Parse(MonthLayout, month); err != nil {
		return "", ErrInvalidMonth
	}

	return month, nil
}
