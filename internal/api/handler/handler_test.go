package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cosmetics-portal-api/internal/api/handler/router"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/internal/scheduler"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/comparing"
	"github.com/vfg2006/cosmetics-portal-api/internal/usecases/ranking"
	"github.com/vfg2006/cosmetics-portal-api/pkg/apiErrors"
	"github.com/vfg2006/cosmetics-portal-api/pkg/middleware"
)

type stubComparer struct {
	lastFilter domain.ComparisonFilter
	yearly     *domain.YearlyComparison
	annual     []domain.AnnualSummary
	monthly    []domain.MonthlySummary
	names      []string
	years      *domain.AvailableYears
	err        error
}

func (s *stubComparer) GetYearlyComparison(_ context.Context, filter domain.ComparisonFilter) (*domain.YearlyComparison, error) {
	s.lastFilter = filter
	return s.yearly, s.err
}

func (s *stubComparer) GetAnnualTotals(_ context.Context, filter domain.ComparisonFilter) ([]domain.AnnualSummary, error) {
	s.lastFilter = filter
	return s.annual, s.err
}

func (s *stubComparer) GetMonthlyTotals(_ context.Context, filter domain.ComparisonFilter) ([]domain.MonthlySummary, error) {
	s.lastFilter = filter
	return s.monthly, s.err
}

func (s *stubComparer) ListVendors(context.Context) ([]string, error) { return s.names, s.err }
func (s *stubComparer) ListClients(context.Context) ([]string, error) { return s.names, s.err }

func (s *stubComparer) ListAvailableYears(context.Context) (*domain.AvailableYears, error) {
	return s.years, s.err
}

type stubRanking struct {
	month    string
	vendorID string
	response *domain.VendorRankingResponse
	item     *domain.VendorRankingItem
	err      error
}

func (s *stubRanking) GetVendorRanking(_ context.Context, month string) (*domain.VendorRankingResponse, error) {
	s.month = month
	return s.response, s.err
}

func (s *stubRanking) GetVendorPosition(_ context.Context, vendorID, month string) (*domain.VendorRankingItem, error) {
	s.vendorID = vendorID
	s.month = month
	return s.item, s.err
}

type stubSync struct {
	triggered int
	err       error
}

func (s *stubSync) Start(context.Context) error { return nil }

func (s *stubSync) TriggerManualSync() error {
	if s.err != nil {
		return s.err
	}
	s.triggered++
	return nil
}

func (s *stubSync) GetStatus() map[string]any {
	return map[string]any{"running": false}
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func adminRequest(method, target string) *http.Request {
	return withClaims(httptest.NewRequest(method, target, nil), &domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
}

func TestParseComparisonFilter(t *testing.T) {
	t.Run("valores padrão", func(t *testing.T) {
		filter := parseComparisonFilter(httptest.NewRequest(http.MethodGet, "/?years=2024", nil))

		assert.Equal(t, domain.DimensionVendor, filter.Dimension)
		assert.Equal(t, domain.AllEntities, filter.SelectedID)
		assert.Equal(t, []string{"2024"}, filter.SelectedYears)
		assert.Empty(t, filter.SelectedMonth)
	})

	t.Run("anos separados por vírgula e repetidos", func(t *testing.T) {
		filter := parseComparisonFilter(httptest.NewRequest(http.MethodGet, "/?month=07&years=2023,%202024,&years=2022&dimension=client&id=c1", nil))

		assert.Equal(t, "07", filter.SelectedMonth)
		assert.Equal(t, []string{"2023", "2024", "2022"}, filter.SelectedYears)
		assert.Equal(t, domain.DimensionClient, filter.Dimension)
		assert.Equal(t, "c1", filter.SelectedID)
	})
}

func TestComparisonRoutes(t *testing.T) {
	t.Run("série diária", func(t *testing.T) {
		service := &stubComparer{yearly: &domain.YearlyComparison{
			SalesData: []domain.DailySeriesPoint{{Day: 1, Values: map[string]int64{"2024": 10}}},
		}}
		rt := router.New(router.WithRoutes(Comparison(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/daily?month=07&years=2024"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "07", service.lastFilter.SelectedMonth)
		assert.JSONEq(t, `{"sales_data":[{"day":1,"values":{"2024":10}}],"clients_data":null}`, rec.Body.String())
	})

	t.Run("totais anuais", func(t *testing.T) {
		service := &stubComparer{annual: []domain.AnnualSummary{{Year: "2024", Sales: 300}}}
		rt := router.New(router.WithRoutes(Comparison(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/annual?years=2024"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"year":"2024","sales":300}]`, rec.Body.String())
	})

	t.Run("erro de validação retorna 400 com código", func(t *testing.T) {
		service := &stubComparer{err: comparing.NewComparisonError(comparing.ErrInvalidMonth, apiErrors.ErrInvalidFormat, "use 01-12")}
		rt := router.New(router.WithRoutes(Comparison(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/monthly?month=13&years=2024"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrInvalidFormat, body.Code)
	})

	t.Run("erro de banco retorna 500", func(t *testing.T) {
		service := &stubComparer{err: comparing.NewComparisonError(comparing.ErrFetchOrders, apiErrors.ErrDatabaseOperation, "timeout")}
		rt := router.New(router.WithRoutes(Comparison(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/vendors"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("listas", func(t *testing.T) {
		service := &stubComparer{names: []string{"Ana"}, years: &domain.AvailableYears{Years: []string{"2024"}}}
		rt := router.New(router.WithRoutes(Comparison(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/clients"))
		assert.JSONEq(t, `{"clients":["Ana"]}`, rec.Body.String())

		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/admin/comparison/years"))
		assert.JSONEq(t, `{"years":["2024"]}`, rec.Body.String())
	})

	t.Run("comercial não acessa a comparação", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Comparison(&stubComparer{})...))

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/admin/comparison/years", nil), &domain.Claims{UserRoleID: middleware.RoleSales})
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestVendorRankingRoutes(t *testing.T) {
	t.Run("ranking do mês", func(t *testing.T) {
		service := &stubRanking{response: &domain.VendorRankingResponse{Ranking: []domain.VendorRankingItem{{VendorID: "v1", Position: 1}}}}
		rt := router.New(router.WithRoutes(VendorRanking(service)...))

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/vendors/ranking?month=07-2024", nil), &domain.Claims{UserRoleID: middleware.RoleSales})
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "07-2024", service.month)
	})

	t.Run("mês inválido", func(t *testing.T) {
		service := &stubRanking{err: ranking.ErrInvalidMonth}
		rt := router.New(router.WithRoutes(VendorRanking(service)...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/vendors/ranking?month=2024-07"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("posição do vendedor autenticado", func(t *testing.T) {
		service := &stubRanking{item: &domain.VendorRankingItem{VendorID: "v7", Position: 3}}
		rt := router.New(router.WithRoutes(VendorRanking(service)...))

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/vendors/me/ranking", nil), &domain.Claims{UserRoleID: middleware.RoleSales, UserVendorID: "v7"})
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "v7", service.vendorID)
	})

	t.Run("vendedor sem pontuação no mês", func(t *testing.T) {
		rt := router.New(router.WithRoutes(VendorRanking(&stubRanking{})...))

		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/vendors/me/ranking", nil), &domain.Claims{UserRoleID: middleware.RoleSales, UserVendorID: "v7"})
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("usuário sem vendedor vinculado", func(t *testing.T) {
		rt := router.New(router.WithRoutes(VendorRanking(&stubRanking{})...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/vendors/me/ranking"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCronRoutes(t *testing.T) {
	newRouter := func(orders, vendorRanking *stubSync) router.Router {
		return router.New(router.WithRoutes(CronJobs(CronJobServices{
			CronJobTypeOrders:        orders,
			CronJobTypeVendorRanking: vendorRanking,
		})...))
	}

	t.Run("dispara uma rotina", func(t *testing.T) {
		orders := &stubSync{}
		rt := newRouter(orders, &stubSync{})

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodPost, "/v1/cron/orders/run"))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, orders.triggered)
	})

	t.Run("dispara todas as rotinas", func(t *testing.T) {
		orders := &stubSync{}
		vendorRanking := &stubSync{err: scheduler.ErrSyncAlreadyRunning}
		rt := newRouter(orders, vendorRanking)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodPost, "/v1/cron/all/run"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Cron jobs iniciadas","type":"all","started":["orders"]}`, rec.Body.String())
	})

	t.Run("rotina já em execução", func(t *testing.T) {
		rt := newRouter(&stubSync{err: scheduler.ErrSyncAlreadyRunning}, &stubSync{})

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodPost, "/v1/cron/orders/run"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rotina inexistente", func(t *testing.T) {
		rt := newRouter(&stubSync{}, &stubSync{})

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodPost, "/v1/cron/meta/run"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		rt := newRouter(&stubSync{}, &stubSync{})

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/cron/status"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"orders":{"running":false},"vendor-ranking":{"running":false}}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	t.Run("banco disponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler(stubPinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("banco indisponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthcheckHandler(stubPinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
