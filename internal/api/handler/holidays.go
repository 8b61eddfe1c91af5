package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

type resolveHolidayResponse struct {
	Date        string `json:"date"`
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description"`
}

// GetHolidayRanking retorna os feriados com maior média de vendas nos dias anteriores
func GetHolidayRanking(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "holidays-ranking: filtros inválidos")
			return
		}

		days, err := intParam(r, "days", defaultWindowDays)
		if err != nil {
			writeError(w, logger, err, "holidays-ranking: janela inválida")
			return
		}

		limit, err := intParam(r, "limit", defaultLimit)
		if err != nil {
			writeError(w, logger, err, "holidays-ranking: limite inválido")
			return
		}

		ranking, err := service.GetHolidayRanking(filters, days, limit)
		if err != nil {
			writeError(w, logger, err, "holidays-ranking: erro ao calcular ranking")
			return
		}

		writeJSON(w, logger, ranking)
	})
}

// ResolveHoliday retorna o feriado observado na data para a cidade e o estado; description vazio quando não há
func ResolveHoliday(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := requiredParam(r, "date")
		if err != nil {
			writeError(w, logger, err, "holidays-resolve: data ausente")
			return
		}

		city := r.URL.Query().Get("city")
		state := r.URL.Query().Get("state")

		description, err := service.ResolveHoliday(date, city, state)
		if err != nil {
			writeError(w, logger, err, "holidays-resolve: erro ao resolver feriado")
			return
		}

		writeJSON(w, logger, resolveHolidayResponse{
			Date:        date,
			City:        city,
			State:       state,
			Description: description,
		})
	})
}
