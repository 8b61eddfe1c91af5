package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

type salesWindowResponse struct {
	Date  string  `json:"date"`
	Days  int     `json:"days"`
	Sales float64 `json:"sales"`
}

// GetTopProducts retorna as famílias de produto com maior volume de vendas
func GetTopProducts(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "top-products: filtros inválidos")
			return
		}

		limit, err := intParam(r, "limit", defaultLimit)
		if err != nil {
			writeError(w, logger, err, "top-products: limite inválido")
			return
		}

		products, err := service.GetTopProducts(filters, limit)
		if err != nil {
			writeError(w, logger, err, "top-products: erro ao calcular ranking")
			return
		}

		writeJSON(w, logger, products)
	})
}

func GetDailySales(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "daily-sales: filtros inválidos")
			return
		}

		daily, err := service.GetDailySales(filters)
		if err != nil {
			writeError(w, logger, err, "daily-sales: erro ao calcular vendas diárias")
			return
		}

		writeJSON(w, logger, daily)
	})
}

// GetSalesInWindow soma as vendas dos days dias anteriores a date, incluindo a própria data
func GetSalesInWindow(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "sales-window: filtros inválidos")
			return
		}

		date, err := requiredParam(r, "date")
		if err != nil {
			writeError(w, logger, err, "sales-window: data ausente")
			return
		}

		days, err := intParam(r, "days", defaultWindowDays)
		if err != nil {
			writeError(w, logger, err, "sales-window: janela inválida")
			return
		}

		total, err := service.GetSalesInWindow(filters, date, days)
		if err != nil {
			writeError(w, logger, err, "sales-window: erro ao somar vendas")
			return
		}

		writeJSON(w, logger, salesWindowResponse{Date: date, Days: days, Sales: total})
	})
}

func GetWeekdayDistribution(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "weekday: filtros inválidos")
			return
		}

		distribution, err := service.GetWeekdayDistribution(filters)
		if err != nil {
			writeError(w, logger, err, "weekday: erro ao calcular médias")
			return
		}

		writeJSON(w, logger, distribution)
	})
}

func GetMonthWeekdayDistribution(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "weekday-months: filtros inválidos")
			return
		}

		matrix, err := service.GetMonthWeekdayDistribution(filters)
		if err != nil {
			writeError(w, logger, err, "weekday-months: erro ao calcular matriz")
			return
		}

		writeJSON(w, logger, matrix)
	})
}

// GetMonthWeekday retorna as médias por dia da semana do mês informado na rota (ex.: January)
func GetMonthWeekday(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := httprouter.ParamsFromContext(r.Context()).ByName("month")
		if !aggregating.IsKnownMonth(month) {
			logger.WithField("month", month).Warn("weekday-month: mês desconhecido, resultado zerado")
		}

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "weekday-month: filtros inválidos")
			return
		}

		distribution, err := service.GetMonthWeekday(filters, month)
		if err != nil {
			writeError(w, logger, err, "weekday-month: erro ao calcular médias")
			return
		}

		writeJSON(w, logger, distribution)
	})
}
