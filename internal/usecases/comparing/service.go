package comparing

import (
	"context"
	"strconv"

	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
	"github.com/vfg2006/cosmetics-portal-api/pkg/log"
)

// Comparer define as consultas de comparação entre períodos usadas pelo painel administrativo
type Comparer interface {
	// GetYearlyComparison retorna as séries diárias de vendas e clientes do mês selecionado
	GetYearlyComparison(ctx context.Context, filter domain.ComparisonFilter) (*domain.YearlyComparison, error)

	// GetAnnualTotals retorna o total de vendas de cada ano selecionado
	GetAnnualTotals(ctx context.Context, filter domain.ComparisonFilter) ([]domain.AnnualSummary, error)

	// GetMonthlyTotals retorna o total do mês selecionado em cada ano
	GetMonthlyTotals(ctx context.Context, filter domain.ComparisonFilter) ([]domain.MonthlySummary, error)

	ListVendors(ctx context.Context) ([]string, error)
	ListClients(ctx context.Context) ([]string, error)
	ListAvailableYears(ctx context.Context) (*domain.AvailableYears, error)
}

type Service struct {
	orderRepository repository.OrderRepository
}

func NewService(orderRepo repository.OrderRepository) Comparer {
	return &Service{
		orderRepository: orderRepo,
	}
}

func (s *Service) GetYearlyComparison(ctx context.Context, filter domain.ComparisonFilter) (*domain.YearlyComparison, error) {
	if err := validateFilter(filter, true); err != nil {
		return nil, err
	}

	orders, err := s.ordersForYears(ctx, filter.SelectedYears)
	if err != nil {
		return nil, err
	}

	comparison, err := BuildYearlyComparisonData(orders, filter)
	if err != nil {
		return nil, NewComparisonError(err, apiErrors.ErrInvalidFormat, "")
	}

	return comparison, nil
}

func (s *Service) GetAnnualTotals(ctx context.Context, filter domain.ComparisonFilter) ([]domain.AnnualSummary, error) {
	if err := validateFilter(filter, false); err != nil {
		return nil, err
	}

	orders, err := s.ordersForYears(ctx, filter.SelectedYears)
	if err != nil {
		return nil, err
	}

	totals, err := BuildAnnualComparisonTotals(orders, filter)
	if err != nil {
		return nil, NewComparisonError(err, apiErrors.ErrInvalidFormat, "")
	}

	return totals, nil
}

func (s *Service) GetMonthlyTotals(ctx context.Context, filter domain.ComparisonFilter) ([]domain.MonthlySummary, error) {
	if err := validateFilter(filter, true); err != nil {
		return nil, err
	}

	orders, err := s.ordersForYears(ctx, filter.SelectedYears)
	if err != nil {
		return nil, err
	}

	totals, err := BuildMonthlyComparisonTotals(orders, filter)
	if err != nil {
		return nil, NewComparisonError(err, apiErrors.ErrInvalidFormat, "")
	}

	return totals, nil
}

func (s *Service) ListVendors(ctx context.Context) ([]string, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	return GetVendorsFromOrders(orders), nil
}

func (s *Service) ListClients(ctx context.Context) ([]string, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	return GetClientsFromOrders(orders), nil
}

func (s *Service) ListAvailableYears(ctx context.Context) (*domain.AvailableYears, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AvailableYears{Years: GetYearsFromOrders(orders)}, nil
}

func (s *Service) allOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepository.ListOrders(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("comparison: erro ao buscar pedidos")
		return nil, NewComparisonError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return orders, nil
}

// ordersForYears busca apenas os pedidos dos anos selecionados; rótulos não numéricos são ignorados
func (s *Service) ordersForYears(ctx context.Context, years []string) ([]domain.Order, error) {
	logger := log.ForContext(ctx)

	numericYears := make([]int, 0, len(years))
	for _, year := range years {
		value, err := strconv.Atoi(year)
		if err != nil {
			logger.WithField("year", year).Debug("comparison: ano ignorado por não ser numérico")
			continue
		}
		numericYears = append(numericYears, value)
	}

	if len(numericYears) == 0 {
		return []domain.Order{}, nil
	}

	orders, err := s.orderRepository.ListOrdersByYears(ctx, numericYears)
	if err != nil {
		logger.WithError(err).Error("comparison: erro ao buscar pedidos por ano")
		return nil, NewComparisonError(ErrFetchOrders, apiErrors.ErrDatabaseOperation, err.Error())
	}

	skipped := 0
	for _, order := range orders {
		if !order.IsValid() {
			skipped++
		}
	}

	if skipped > 0 {
		logger.WithFields(log.Fields{
			"orders_total":   len(orders),
			"orders_skipped": skipped,
		}).Debug("comparison: pedidos malformados ignorados na agregação")
	}

	return orders, nil
}

func validateFilter(filter domain.ComparisonFilter, requireMonth bool) error {
	if !filter.Dimension.IsValid() {
		return NewComparisonError(ErrInvalidDimension, apiErrors.ErrInvalidFormat, "use vendor ou client")
	}

	if len(filter.SelectedYears) == 0 {
		return NewComparisonError(ErrMissingYears, apiErrors.ErrMissingRequiredData, "")
	}

	if requireMonth {
		if _, err := parseMonth(filter.SelectedMonth); err != nil {
			return NewComparisonError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "use formato de dois dígitos (01-12)")
		}
	}

	return nil
}
