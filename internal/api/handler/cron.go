package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cosmetics-portal-api/internal/scheduler"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
	"github.com/vfg2006/cosmetics-portal-api/pkg/log"
)

const (
	CronJobTypeOrders        = "orders"
	CronJobTypeVendorRanking = "vendor-ranking"
	CronJobTypeAll           = "all"
)

// CronJobServices associa o tipo da rotina ao serviço que a executa
type CronJobServices map[string]scheduler.SyncService

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma rotina específica ou todas
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			started := make([]string, 0, len(services))
			for _, name := range services.types() {
				if err := services[name].TriggerManualSync(); err != nil {
					logger.WithError(err).Warnf("Cron job %s não iniciada", name)
					continue
				}
				started = append(started, name)
			}

			writeJSON(w, r, http.StatusOK, map[string]any{
				"message": "Cron jobs iniciadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		service, exists := services[cronType]
		if !exists || service == nil {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido", map[string]any{
				"accepted": append(services.types(), CronJobTypeAll),
			})
			return
		}

		if err := service.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, service := range services {
			status[name] = service.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
