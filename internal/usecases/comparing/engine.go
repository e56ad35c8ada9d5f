package comparing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

// DaysInSeries é a quantidade fixa de pontos da série diária (eixo x do gráfico)
const DaysInSeries = 31

// BuildYearlyComparisonData agrupa os pedidos do mês selecionado por dia e por ano.
//
// SalesData soma o total dos pedidos de cada dia. ClientsData conta as entidades
// distintas do eixo oposto ao da dimensão: clientes quando a dimensão é vendedor,
// vendedores quando a dimensão é cliente. Os dois slices têm sempre 31 pontos em
// ordem crescente de dia e todos os anos selecionados presentes, com zero quando
// não há pedidos.
func BuildYearlyComparisonData(orders []domain.Order, filter domain.ComparisonFilter) (*domain.YearlyComparison, error) {
	if !filter.Dimension.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDimension, filter.Dimension)
	}

	month, err := parseMonth(filter.SelectedMonth)
	if err != nil {
		return nil, err
	}

	years := uniqueYears(filter.SelectedYears)
	selected := yearSet(years)

	sales := newDailySeries(years)
	counts := newDailySeries(years)

	// dia -> ano -> entidades já contadas
	seen := make(map[int]map[string]map[string]struct{})

	for _, order := range orders {
		date, ok := includedDate(order, filter)
		if !ok || date.Month() != month {
			continue
		}

		year := strconv.Itoa(date.Year())
		if _, ok := selected[year]; !ok {
			continue
		}

		day := date.Day()
		sales[day-1].Values[year] += *order.Total

		counterpart := counterpartKey(order, filter.Dimension)
		if counterpart == "" {
			continue
		}

		if seen[day] == nil {
			seen[day] = make(map[string]map[string]struct{})
		}
		if seen[day][year] == nil {
			seen[day][year] = make(map[string]struct{})
		}
		if _, counted := seen[day][year][counterpart]; counted {
			continue
		}

		seen[day][year][counterpart] = struct{}{}
		counts[day-1].Values[year]++
	}

	return &domain.YearlyComparison{
		SalesData:   sales,
		ClientsData: counts,
	}, nil
}

// BuildAnnualComparisonTotals soma o total dos pedidos por ano, ignorando mês e dia.
// O resultado segue a ordem em que os anos foram informados e inclui anos sem
// pedidos com vendas zeradas.
func BuildAnnualComparisonTotals(orders []domain.Order, filter domain.ComparisonFilter) ([]domain.AnnualSummary, error) {
	if !filter.Dimension.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDimension, filter.Dimension)
	}

	years := uniqueYears(filter.SelectedYears)
	totals := make(map[string]int64, len(years))
	for _, year := range years {
		totals[year] = 0
	}

	for _, order := range orders {
		date, ok := includedDate(order, filter)
		if !ok {
			continue
		}

		year := strconv.Itoa(date.Year())
		if _, ok := totals[year]; ok {
			totals[year] += *order.Total
		}
	}

	summaries := make([]domain.AnnualSummary, 0, len(years))
	for _, year := range years {
		summaries = append(summaries, domain.AnnualSummary{
			Year:  year,
			Sales: totals[year],
		})
	}

	return summaries, nil
}

// BuildMonthlyComparisonTotals soma o total do mês selecionado em cada ano.
// Para um mesmo filtro, o valor de cada ano é a soma da série diária de vendas.
func BuildMonthlyComparisonTotals(orders []domain.Order, filter domain.ComparisonFilter) ([]domain.MonthlySummary, error) {
	comparison, err := BuildYearlyComparisonData(orders, filter)
	if err != nil {
		return nil, err
	}

	years := uniqueYears(filter.SelectedYears)
	summaries := make([]domain.MonthlySummary, 0, len(years))
	for _, year := range years {
		var total int64
		for _, point := range comparison.SalesData {
			total += point.Values[year]
		}

		summaries = append(summaries, domain.MonthlySummary{
			Year:  year,
			Month: filter.SelectedMonth,
			Sales: total,
		})
	}

	return summaries, nil
}

// GetVendorsFromOrders retorna os nomes distintos de vendedores na ordem em que aparecem
func GetVendorsFromOrders(orders []domain.Order) []string {
	return distinctNames(orders, func(o domain.Order) string { return o.VendorName })
}

// GetClientsFromOrders retorna os nomes distintos de clientes na ordem em que aparecem
func GetClientsFromOrders(orders []domain.Order) []string {
	return distinctNames(orders, func(o domain.Order) string { return o.ClientName })
}

// GetYearsFromOrders retorna os anos distintos dos pedidos válidos em ordem crescente
func GetYearsFromOrders(orders []domain.Order) []string {
	set := make(map[int]struct{})
	for _, order := range orders {
		if !order.IsValid() {
			continue
		}
		date, _ := order.ParsedDate()
		set[date.Year()] = struct{}{}
	}

	years := make([]int, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Ints(years)

	labels := make([]string, 0, len(years))
	for _, year := range years {
		labels = append(labels, strconv.Itoa(year))
	}

	return labels
}

// includedDate aplica validação e filtro de entidade, retornando a data do pedido
func includedDate(order domain.Order, filter domain.ComparisonFilter) (time.Time, bool) {
	if !order.IsValid() || !matchesEntity(order, filter) {
		return time.Time{}, false
	}

	return order.ParsedDate()
}

func matchesEntity(order domain.Order, filter domain.ComparisonFilter) bool {
	if filter.IsAllSelected() {
		return true
	}

	// aceita o ID ou o nome, já que as listas de seleção são montadas por nome
	switch filter.Dimension {
	case domain.DimensionVendor:
		return order.VendorKey() == filter.SelectedID || strings.TrimSpace(order.VendorName) == filter.SelectedID
	case domain.DimensionClient:
		return order.ClientKey() == filter.SelectedID || strings.TrimSpace(order.ClientName) == filter.SelectedID
	}

	return false
}

func counterpartKey(order domain.Order, dimension domain.Dimension) string {
	if dimension == domain.DimensionClient {
		return order.VendorKey()
	}
	return order.ClientKey()
}

func parseMonth(month string) (time.Month, error) {
	if len(month) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	value, err := strconv.Atoi(month)
	if err != nil || value < 1 || value > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	return time.Month(value), nil
}

func newDailySeries(years []string) []domain.DailySeriesPoint {
	series := make([]domain.DailySeriesPoint, DaysInSeries)
	for i := range series {
		values := make(map[string]int64, len(years))
		for _, year := range years {
			values[year] = 0
		}

		series[i] = domain.DailySeriesPoint{
			Day:    i + 1,
			Values: values,
		}
	}

	return series
}

// uniqueYears remove anos repetidos mantendo a primeira ocorrência
func uniqueYears(years []string) []string {
	seen := make(map[string]struct{}, len(years))
	unique := make([]string, 0, len(years))
	for _, year := range years {
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		unique = append(unique, year)
	}

	return unique
}

func yearSet(years []string) map[string]struct{} {
	set := make(map[string]struct{}, len(years))
	for _, year := range years {
		set[year] = struct{}{}
	}
	return set
}

func distinctNames(orders []domain.Order, name func(domain.Order) string) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, order := range orders {
		value := strings.TrimSpace(name(order))
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		names = append(names, value)
	}

	return names
}
