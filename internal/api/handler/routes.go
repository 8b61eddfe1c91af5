package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Sales(service dashboard.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/sales/daily",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/v1/sales/window",
			Method:  http.MethodGet,
			Handler: GetSalesInWindow(service),
		},
		{
			Path:    "/v1/sales/weekday",
			Method:  http.MethodGet,
			Handler: GetWeekdayDistribution(service),
		},
		{
			Path:    "/v1/sales/weekday/months",
			Method:  http.MethodGet,
			Handler: GetMonthWeekdayDistribution(service),
		},
		{
			Path:    "/v1/sales/weekday/months/:month",
			Method:  http.MethodGet,
			Handler: GetMonthWeekday(service),
		},
	}
}

func Holidays(service dashboard.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/holidays/ranking",
			Method:  http.MethodGet,
			Handler: GetHolidayRanking(service),
		},
		{
			Path:    "/v1/holidays/resolve",
			Method:  http.MethodGet,
			Handler: ResolveHoliday(service),
		},
	}
}

func Dataset(service dashboard.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
