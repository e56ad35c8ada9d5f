package handler

import (
	"net/http"

	"github.com/vfg2006/cosmetics-portal-api/internal/api/handler/router"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/comparing"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/ranking"
	"github.com/vfg2006/cosmetics-portal-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Comparison(service comparing.Comparer) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/admin/comparison/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyComparison(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/comparison/annual",
			Method:      http.MethodGet,
			Handler:     GetAnnualComparison(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/comparison/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyComparison(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/comparison/vendors",
			Method:      http.MethodGet,
			Handler:     ListComparisonVendors(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/comparison/clients",
			Method:      http.MethodGet,
			Handler:     ListComparisonClients(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/comparison/years",
			Method:      http.MethodGet,
			Handler:     ListComparisonYears(service),
			Middlewares: adminOnly,
		},
	}
}

func VendorRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vendors/ranking",
			Method:      http.MethodGet,
			Handler:     GetVendorRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSales()},
		},
		{
			Path:        "/v1/vendors/me/ranking",
			Method:      http.MethodGet,
			Handler:     GetMyVendorPosition(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSales()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
