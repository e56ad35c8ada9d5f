package comparing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func order(id, date string, total int64, vendorID, clientID string) domain.Order {
	return domain.Order{
		ID:         id,
		Date:       date,
		Total:      int64Ptr(total),
		VendorID:   vendorID,
		VendorName: "Vendedor " + vendorID,
		ClientID:   clientID,
		ClientName: "Cliente " + clientID,
	}
}

func julyFilter(id string) domain.ComparisonFilter {
	return domain.ComparisonFilter{
		SelectedMonth: "07",
		SelectedYears: []string{"2023", "2024"},
		Dimension:     domain.DimensionVendor,
		SelectedID:    id,
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		order("1", "2024-07-05", 1000, "v1", "c1"),
		order("2", "2024-07-05", 2000, "v2", "c2"),
		order("3", "2023-07-05", 500, "v1", "c1"),
	}
}

func TestBuildYearlyComparisonData(t *testing.T) {
	t.Run("todos os vendedores somam as vendas do dia", func(t *testing.T) {
		result, err := BuildYearlyComparisonData(sampleOrders(), julyFilter(domain.AllEntities))
		require.NoError(t, err)

		require.Len(t, result.SalesData, DaysInSeries)
		require.Len(t, result.ClientsData, DaysInSeries)

		day5 := result.SalesData[4]
		assert.Equal(t, 5, day5.Day)
		assert.Equal(t, map[string]int64{"2023": 500, "2024": 3000}, day5.Values)

		assert.Equal(t, map[string]int64{"2023": 1, "2024": 2}, result.ClientsData[4].Values)
	})

	t.Run("vendedor específico considera apenas os seus pedidos", func(t *testing.T) {
		result, err := BuildYearlyComparisonData(sampleOrders(), julyFilter("v1"))
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{"2023": 500, "2024": 1000}, result.SalesData[4].Values)
	})

	t.Run("vendedor pode ser selecionado pelo nome", func(t *testing.T) {
		result, err := BuildYearlyComparisonData(sampleOrders(), julyFilter("Vendedor v2"))
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{"2023": 0, "2024": 2000}, result.SalesData[4].Values)
	})

	t.Run("mesmo cliente no mesmo dia conta uma vez", func(t *testing.T) {
		orders := []domain.Order{
			order("1", "2024-07-10", 100, "v1", "c1"),
			order("2", "2024-07-10", 200, "v2", "c1"),
			order("3", "2024-07-10", 300, "v1", "c2"),
		}

		result, err := BuildYearlyComparisonData(orders, julyFilter(domain.AllEntities))
		require.NoError(t, err)

		assert.Equal(t, int64(2), result.ClientsData[9].Values["2024"])
		assert.Equal(t, int64(600), result.SalesData[9].Values["2024"])
	})

	t.Run("na dimensão cliente conta vendedores distintos", func(t *testing.T) {
		orders := []domain.Order{
			order("1", "2024-07-10", 100, "v1", "c1"),
			order("2", "2024-07-10", 200, "v2", "c1"),
			order("3", "2024-07-10", 300, "v2", "c1"),
			order("4", "2024-07-10", 400, "v3", "c2"),
		}
		filter := julyFilter("c1")
		filter.Dimension = domain.DimensionClient

		result, err := BuildYearlyComparisonData(orders, filter)
		require.NoError(t, err)

		assert.Equal(t, int64(600), result.SalesData[9].Values["2024"])
		assert.Equal(t, int64(2), result.ClientsData[9].Values["2024"])
	})

	t.Run("entrada vazia gera 31 pontos zerados", func(t *testing.T) {
		result, err := BuildYearlyComparisonData(nil, julyFilter(domain.AllEntities))
		require.NoError(t, err)

		require.Len(t, result.SalesData, DaysInSeries)
		for i, point := range result.SalesData {
			assert.Equal(t, i+1, point.Day)
			assert.Equal(t, map[string]int64{"2023": 0, "2024": 0}, point.Values)
			assert.Equal(t, map[string]int64{"2023": 0, "2024": 0}, result.ClientsData[i].Values)
		}
	})

	t.Run("pedidos malformados são ignorados", func(t *testing.T) {
		orders := []domain.Order{
			order("1", "2024-07-05", 1000, "v1", "c1"),
			{ID: "2", Date: "2024-07-05", Total: nil, VendorID: "v1"},
			{ID: "3", Date: "05/07/2024", Total: int64Ptr(10), VendorID: "v1"},
			{ID: "4", Date: "2024-07-05", Total: int64Ptr(-10), VendorID: "v1"},
			{ID: "5", Date: "2024-07-05", Total: int64Ptr(10)},
			{ID: "6", Date: "2024-07-05T13:45:00Z", Total: int64Ptr(7), VendorID: "v1"},
			{ID: "7", Date: "2024-07-05 08:30:00", Total: int64Ptr(3), VendorID: "v1"},
			{ID: "8", Date: "2024-07-05junk", Total: int64Ptr(7), VendorID: "v1"},
			{ID: "9", Date: "2024-07-05T25:00:00Z", Total: int64Ptr(11), VendorID: "v1"},
		}

		result, err := BuildYearlyComparisonData(orders, julyFilter(domain.AllEntities))
		require.NoError(t, err)

		assert.Equal(t, int64(1010), result.SalesData[4].Values["2024"])
	})

	t.Run("pedidos fora do mês ou dos anos selecionados são ignorados", func(t *testing.T) {
		orders := []domain.Order{
			order("1", "2024-06-05", 1000, "v1", "c1"),
			order("2", "2022-07-05", 1000, "v1", "c1"),
			order("3", "2024-07-31", 50, "v1", "c1"),
		}

		result, err := BuildYearlyComparisonData(orders, julyFilter(domain.AllEntities))
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.SalesData[4].Values["2024"])
		assert.NotContains(t, result.SalesData[4].Values, "2022")
		assert.Equal(t, int64(50), result.SalesData[30].Values["2024"])
	})

	t.Run("ID inexistente gera séries zeradas", func(t *testing.T) {
		result, err := BuildYearlyComparisonData(sampleOrders(), julyFilter("v99"))
		require.NoError(t, err)

		for _, point := range result.SalesData {
			assert.Equal(t, int64(0), point.Values["2023"])
			assert.Equal(t, int64(0), point.Values["2024"])
		}
	})

	t.Run("dimensão inválida", func(t *testing.T) {
		filter := julyFilter(domain.AllEntities)
		filter.Dimension = "store"

		result, err := BuildYearlyComparisonData(sampleOrders(), filter)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Nil(t, result)
	})

	t.Run("mês inválido", func(t *testing.T) {
		for _, month := range []string{"", "7", "13", "00", "ab", "007"} {
			filter := julyFilter(domain.AllEntities)
			filter.SelectedMonth = month

			_, err := BuildYearlyComparisonData(sampleOrders(), filter)
			assert.ErrorIs(t, err, ErrInvalidMonth, "mês %q", month)
		}
	})

	t.Run("chamadas repetidas produzem o mesmo resultado", func(t *testing.T) {
		first, err := BuildYearlyComparisonData(sampleOrders(), julyFilter(domain.AllEntities))
		require.NoError(t, err)
		second, err := BuildYearlyComparisonData(sampleOrders(), julyFilter(domain.AllEntities))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestBuildAnnualComparisonTotals(t *testing.T) {
	orders := []domain.Order{
		order("1", "2024-01-10", 100, "v1", "c1"),
		order("2", "2024-07-05", 200, "v2", "c2"),
		order("3", "2023-12-31", 50, "v1", "c1"),
	}

	t.Run("soma o ano inteiro na ordem informada", func(t *testing.T) {
		filter := domain.ComparisonFilter{
			SelectedYears: []string{"2024", "2022", "2023", "2024"},
			Dimension:     domain.DimensionVendor,
			SelectedID:    domain.AllEntities,
		}

		result, err := BuildAnnualComparisonTotals(orders, filter)
		require.NoError(t, err)

		assert.Equal(t, []domain.AnnualSummary{
			{Year: "2024", Sales: 300},
			{Year: "2022", Sales: 0},
			{Year: "2023", Sales: 50},
		}, result)
	})

	t.Run("filtra pela entidade selecionada", func(t *testing.T) {
		filter := domain.ComparisonFilter{
			SelectedYears: []string{"2023", "2024"},
			Dimension:     domain.DimensionClient,
			SelectedID:    "c2",
		}

		result, err := BuildAnnualComparisonTotals(orders, filter)
		require.NoError(t, err)

		assert.Equal(t, []domain.AnnualSummary{
			{Year: "2023", Sales: 0},
			{Year: "2024", Sales: 200},
		}, result)
	})

	t.Run("ignora o mês selecionado", func(t *testing.T) {
		filter := domain.ComparisonFilter{
			SelectedMonth: "07",
			SelectedYears: []string{"2024"},
			Dimension:     domain.DimensionVendor,
		}

		result, err := BuildAnnualComparisonTotals(orders, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(300), result[0].Sales)
	})

	t.Run("dimensão inválida", func(t *testing.T) {
		_, err := BuildAnnualComparisonTotals(orders, domain.ComparisonFilter{SelectedYears: []string{"2024"}})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestBuildMonthlyComparisonTotals(t *testing.T) {
	orders := []domain.Order{
		order("1", "2024-07-01", 100, "v1", "c1"),
		order("2", "2024-07-31", 200, "v2", "c2"),
		order("3", "2024-08-01", 400, "v2", "c2"),
		order("4", "2023-07-15", 50, "v1", "c1"),
	}

	result, err := BuildMonthlyComparisonTotals(orders, julyFilter(domain.AllEntities))
	require.NoError(t, err)

	assert.Equal(t, []domain.MonthlySummary{
		{Year: "2023", Month: "07", Sales: 50},
		{Year: "2024", Month: "07", Sales: 300},
	}, result)

	_, err = BuildMonthlyComparisonTotals(orders, domain.ComparisonFilter{
		SelectedMonth: "7",
		SelectedYears: []string{"2024"},
		Dimension:     domain.DimensionVendor,
	})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestSumConservation(t *testing.T) {
	orders := []domain.Order{
		order("1", "2024-01-10", 100, "v1", "c1"),
		order("2", "2024-02-29", 200, "v2", "c2"),
		order("3", "2024-07-05", 300, "v1", "c3"),
		order("4", "2024-07-05", 400, "v2", "c1"),
		order("5", "2024-12-31", 500, "v1", "c2"),
		order("6", "2023-03-03", 600, "v1", "c2"),
	}
	years := []string{"2023", "2024"}

	for _, id := range []string{domain.AllEntities, "v1", "v2"} {
		monthsSum := map[string]int64{}

		for month := 1; month <= 12; month++ {
			filter := domain.ComparisonFilter{
				SelectedMonth: fmt.Sprintf("%02d", month),
				SelectedYears: years,
				Dimension:     domain.DimensionVendor,
				SelectedID:    id,
			}

			daily, err := BuildYearlyComparisonData(orders, filter)
			require.NoError(t, err)
			monthly, err := BuildMonthlyComparisonTotals(orders, filter)
			require.NoError(t, err)

			for _, summary := range monthly {
				var dailySum int64
				for _, point := range daily.SalesData {
					dailySum += point.Values[summary.Year]
				}
				assert.Equal(t, dailySum, summary.Sales)
				monthsSum[summary.Year] += summary.Sales
			}
		}

		annual, err := BuildAnnualComparisonTotals(orders, domain.ComparisonFilter{
			SelectedYears: years,
			Dimension:     domain.DimensionVendor,
			SelectedID:    id,
		})
		require.NoError(t, err)

		for _, summary := range annual {
			assert.Equal(t, summary.Sales, monthsSum[summary.Year], "id %s ano %s", id, summary.Year)
		}
	}
}

func TestFilterMonotonicity(t *testing.T) {
	orders := sampleOrders()

	all, err := BuildYearlyComparisonData(orders, julyFilter(domain.AllEntities))
	require.NoError(t, err)

	for _, id := range []string{"v1", "v2", "v3"} {
		specific, err := BuildYearlyComparisonData(orders, julyFilter(id))
		require.NoError(t, err)

		for i := range specific.SalesData {
			for year, value := range specific.SalesData[i].Values {
				assert.LessOrEqual(t, value, all.SalesData[i].Values[year])
				assert.LessOrEqual(t, specific.ClientsData[i].Values[year], all.ClientsData[i].Values[year])
			}
		}
	}
}

func TestGetVendorsAndClientsFromOrders(t *testing.T) {
	orders := []domain.Order{
		{VendorName: "Ana", ClientName: "Loja B"},
		{VendorName: " Bruno ", ClientName: "Loja A"},
		{VendorName: "Ana", ClientName: ""},
		{VendorName: "", ClientName: "Loja B"},
	}

	assert.Equal(t, []string{"Ana", "Bruno"}, GetVendorsFromOrders(orders))
	assert.Equal(t, []string{"Loja B", "Loja A"}, GetClientsFromOrders(orders))
	assert.Empty(t, GetVendorsFromOrders(nil))
}

func TestGetYearsFromOrders(t *testing.T) {
	orders := []domain.Order{
		order("1", "2024-01-10", 100, "v1", "c1"),
		order("2", "2022-05-10", 100, "v1", "c1"),
		order("3", "2024-03-10", 100, "v1", "c1"),
		{ID: "4", Date: "2019-01-01"},
	}

	assert.Equal(t, []string{"2022", "2024"}, GetYearsFromOrders(orders))
}
