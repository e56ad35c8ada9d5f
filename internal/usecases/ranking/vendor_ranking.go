package ranking

import (
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/pkg/utils"
)

// MonthLayout é o formato de período usado no ranking (mm-yyyy)
const MonthLayout = "01-2006"

var (
	ErrInvalidMonth  = errors.New("invalid month, expected mm-yyyy")
	ErrMissingVendor = errors.New("vendor id is required")
)

type vendorAggregator struct {
	vendorID   string
	vendorName string
	sales      int64
	orders     int
	clients    map[string]struct{}
}

// BuildVendorRanking monta o ranking de vendedores do mês de referência.
// previous contém o ranking salvo anteriormente para o mesmo mês, indexado pelo ID do vendedor.
func BuildVendorRanking(orders []domain.Order, reference time.Time, previous map[string]*domain.VendorRankingItem) []*domain.VendorRankingItem {
	month := reference.Format(MonthLayout)

	aggregators := make(map[string]*vendorAggregator)
	var monthTotal int64

	for _, order := range orders {
		if !order.IsValid() {
			continue
		}

		date, _ := order.ParsedDate()
		if date.Year() != reference.Year() || date.Month() != reference.Month() {
			continue
		}

		vendorKey := order.VendorKey()
		if vendorKey == "" {
			continue
		}

		agg, exists := aggregators[vendorKey]
		if !exists {
			agg = &vendorAggregator{
				vendorID:   vendorKey,
				vendorName: order.VendorName,
				clients:    make(map[string]struct{}),
			}
			aggregators[vendorKey] = agg
		}

		if agg.vendorName == "" {
			agg.vendorName = order.VendorName
		}

		agg.sales += *order.Total
		agg.orders++
		if clientKey := order.ClientKey(); clientKey != "" {
			agg.clients[clientKey] = struct{}{}
		}

		monthTotal += *order.Total
	}

	rankings := make([]*domain.VendorRankingItem, 0, len(aggregators))
	for _, agg := range aggregators {
		rankings = append(rankings, &domain.VendorRankingItem{
			VendorID:     agg.vendorID,
			Month:        month,
			VendorName:   agg.vendorName,
			Sales:        agg.sales,
			OrdersCount:  agg.orders,
			ClientsCount: len(agg.clients),
			SalesShare:   utils.Percentage(agg.sales, monthTotal),
		})
	}

	updatePositions(rankings, previous)

	return rankings
}

func updatePositions(rankings []*domain.VendorRankingItem, previous map[string]*domain.VendorRankingItem) {
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Sales != rankings[j].Sales {
			return rankings[i].Sales > rankings[j].Sales
		}
		if rankings[i].VendorName != rankings[j].VendorName {
			return rankings[i].VendorName < rankings[j].VendorName
		}
		return rankings[i].VendorID < rankings[j].VendorID
	})

	for i, ranking := range rankings {
		ranking.Position = i + 1

		rankingBefore, exists := previous[ranking.VendorID]
		if exists && rankingBefore.Position > 0 {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}
