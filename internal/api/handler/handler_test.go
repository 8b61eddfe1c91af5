package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func serve(routes []router.Route, method string, target string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func analyzerRoutes(analyzer *mocks.MockAnalyzer) []router.Route {
	var routes []router.Route
	routes = append(routes, Dashboard(analyzer)...)
	routes = append(routes, Sales(analyzer)...)
	routes = append(routes, Holidays(analyzer)...)
	routes = append(routes, Dataset(analyzer)...)
	return routes
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func date(s string) *time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return &d
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(*mocks.MockAnalyzer)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Sem filtros",
			target: "/v1/dashboard",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetDashboard(domain.SalesFilters{}).Return(&domain.DashboardResponse{DatasetID: "abc123"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Filtros de loja e período",
			target: "/v1/dashboard?store=25&start_date=2013-01-01&end_date=2013-01-31",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetDashboard(domain.SalesFilters{
					StoreNbr:  "25",
					StartDate: date("2013-01-01"),
					EndDate:   date("2013-01-31"),
				}).Return(&domain.DashboardResponse{DatasetID: "abc123"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Data inválida",
			target:     "/v1/dashboard?start_date=01/01/2013",
			setup:      func(a *mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Dataset não carregado",
			target: "/v1/dashboard",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetDashboard(gomock.Any()).Return(nil, domain.ErrDatasetNotLoaded)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrDatasetNotLoaded,
		},
		{
			name:   "Erro inesperado",
			target: "/v1/dashboard",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			rec := serve(analyzerRoutes(analyzer), http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}

			var body domain.DashboardResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "abc123", body.DatasetID)
		})
	}
}

func TestGetTopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetTopProducts(domain.SalesFilters{}, 10).Return([]domain.CategoryTotal{{Category: "GROCERY I", Sales: 100}}, nil)
	analyzer.EXPECT().GetTopProducts(domain.SalesFilters{StoreNbr: "1"}, 3).Return([]domain.CategoryTotal{}, nil)

	rec := serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/top-products")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"category":"GROCERY I","sales":100}]`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/top-products?store=1&limit=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, limit := range []string{"abc", "-1"} {
		rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/top-products?limit="+limit)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	}
}

func TestGetSalesInWindow(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(*mocks.MockAnalyzer)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:   "Janela padrão de 10 dias",
			target: "/v1/sales/window?date=2023-01-05",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetSalesInWindow(domain.SalesFilters{}, "2023-01-05", 10).Return(8.0, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2023-01-05","days":10,"sales":8}`,
		},
		{
			name:   "Janela informada",
			target: "/v1/sales/window?date=2023-01-03&days=1",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetSalesInWindow(domain.SalesFilters{}, "2023-01-03", 1).Return(0.0, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2023-01-03","days":1,"sales":0}`,
		},
		{
			name:       "Data ausente",
			target:     "/v1/sales/window",
			setup:      func(a *mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "Data inválida vinda do serviço",
			target: "/v1/sales/window?date=2023-13-01",
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().GetSalesInWindow(gomock.Any(), "2023-13-01", 10).Return(0.0, domain.ErrInvalidDate)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			rec := serve(analyzerRoutes(analyzer), http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWeekdayRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregate := domain.WeekdayAggregate{{Weekday: "Monday", Sales: 10}}

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetWeekdayDistribution(domain.SalesFilters{}).Return(aggregate, nil)
	analyzer.EXPECT().GetMonthWeekdayDistribution(domain.SalesFilters{}).Return(domain.MonthWeekdayMatrix{{Month: "January", Weekdays: aggregate}}, nil)
	analyzer.EXPECT().GetMonthWeekday(domain.SalesFilters{StoreNbr: "2"}, "January").Return(aggregate, nil)
	analyzer.EXPECT().GetDailySales(domain.SalesFilters{}).Return([]domain.DailySales{}, nil)

	rec := serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/weekday")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"weekday":"Monday","sales":10}]`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/weekday/months")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"month":"January","weekdays":[{"weekday":"Monday","sales":10}]}]`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/weekday/months/January?store=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"weekday":"Monday","sales":10}]`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/sales/daily")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHolidayRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetHolidayRanking(domain.SalesFilters{}, 10, 10).Return([]domain.HolidaySales{{Description: "Navidad", SalesBefore: 225}}, nil)
	analyzer.EXPECT().GetHolidayRanking(domain.SalesFilters{}, 5, 2).Return([]domain.HolidaySales{}, nil)
	analyzer.EXPECT().ResolveHoliday("2013-05-01", "Quito", "Pichincha").Return("Dia del Trabajo", nil)
	analyzer.EXPECT().ResolveHoliday("2013-05-02", "", "").Return("", nil)

	rec := serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/holidays/ranking")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"description":"Navidad","sales_before":225}]`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/holidays/ranking?days=5&limit=2")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/holidays/resolve?date=2013-05-01&city=Quito&state=Pichincha")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2013-05-01","city":"Quito","state":"Pichincha","description":"Dia del Trabajo"}`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/holidays/resolve?date=2013-05-02")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2013-05-02","city":"","state":"","description":""}`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/holidays/resolve")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestDatasetRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().ListStores().Return([]string{"1", "2", "10"}, nil)
	analyzer.EXPECT().GetDatasetInfo().Return(nil, domain.ErrDatasetNotLoaded)

	rec := serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/stores")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stores":["1","2","10"]}`, rec.Body.String())

	rec = serve(analyzerRoutes(analyzer), http.MethodGet, "/v1/dataset")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrDatasetNotLoaded, decodeError(t, rec).Code)
}

type fakeCronJob struct {
	started bool
	calls   int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.calls > 0}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		job        *fakeCronJob
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "Recarga iniciada", job: &fakeCronJob{started: true}, target: "/v1/cron/reload/run", wantStatus: http.StatusAccepted},
		{name: "Recarga em andamento", job: &fakeCronJob{started: false}, target: "/v1/cron/reload/run", wantStatus: http.StatusConflict, wantCode: apiErrors.ErrReloadInProgress},
		{name: "Tipo inválido", job: &fakeCronJob{started: true}, target: "/v1/cron/meta/run", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(CronJobs(CronJobServices{DatasetReloadService: tt.job}), http.MethodPost, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rec := serve(CronJobs(CronJobServices{}), http.MethodPost, "/v1/cron/reload/run")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestGetCronStatus(t *testing.T) {
	job := &fakeCronJob{started: true}
	job.TriggerManualSync()

	rec := serve(CronJobs(CronJobServices{DatasetReloadService: job}), http.MethodGet, "/v1/cron/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reload":{"sync_running":true}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}
