package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/ranking"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
	"github.com/vfg2006/cosmetics-portal-api/pkg/log"
	"github.com/vfg2006/cosmetics-portal-api/pkg/middleware"
)

// GetVendorRanking retorna o ranking de vendedores do mês (?month=mm-yyyy)
func GetVendorRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetVendorRanking(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			writeRankingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetMyVendorPosition retorna a posição do vendedor autenticado
func GetMyVendorPosition(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || claims.UserVendorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário não está vinculado a um vendedor", nil)
			return
		}

		item, err := service.GetVendorPosition(r.Context(), claims.UserVendorID, r.URL.Query().Get("month"))
		if err != nil {
			writeRankingError(w, r, err)
			return
		}

		if item == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	}
}

func writeRankingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ranking.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use mm-yyyy", nil)
	case errors.Is(err, ranking.ErrMissingVendor):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking de vendedores")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de vendedores", nil)
	}
}
