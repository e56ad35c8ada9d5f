package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/comparing"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
	"github.com/vfg2006/cosmetics-portal-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseComparisonFilter lê month, years (lista separada por vírgula ou repetida), dimension e id
func parseComparisonFilter(r *http.Request) domain.ComparisonFilter {
	query := r.URL.Query()

	years := make([]string, 0)
	for _, param := range query["years"] {
		for _, year := range strings.Split(param, ",") {
			if year = strings.TrimSpace(year); year != "" {
				years = append(years, year)
			}
		}
	}

	dimension := domain.Dimension(strings.TrimSpace(query.Get("dimension")))
	if dimension == "" {
		dimension = domain.DimensionVendor
	}

	selectedID := strings.TrimSpace(query.Get("id"))
	if selectedID == "" {
		selectedID = domain.AllEntities
	}

	return domain.ComparisonFilter{
		SelectedMonth: strings.TrimSpace(query.Get("month")),
		SelectedYears: years,
		Dimension:     dimension,
		SelectedID:    selectedID,
	}
}

func writeComparisonError(w http.ResponseWriter, r *http.Request, err error) {
	var comparisonErr *comparing.ComparisonError
	if errors.As(err, &comparisonErr) {
		if !comparing.IsValidationError(err) {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar comparação de pedidos")
		}
		apiErrors.WriteError(w, comparisonErr.Code, comparisonErr.Err.Error(), comparisonErr.Details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado na comparação de pedidos")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar comparação", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// GetDailyComparison retorna as séries diárias de vendas e clientes do mês por ano
func GetDailyComparison(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetYearlyComparison(r.Context(), parseComparisonFilter(r))
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetAnnualComparison(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetAnnualTotals(r.Context(), parseComparisonFilter(r))
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetMonthlyComparison(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetMonthlyTotals(r.Context(), parseComparisonFilter(r))
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func ListComparisonVendors(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := service.ListVendors(r.Context())
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string][]string{"vendors": vendors})
	}
}

func ListComparisonClients(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients(r.Context())
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string][]string{"clients": clients})
	}
}

func ListComparisonYears(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		years, err := service.ListAvailableYears(r.Context())
		if err != nil {
			writeComparisonError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, years)
	}
}
