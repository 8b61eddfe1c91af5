package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetDashboard retorna as tabelas de todos os gráficos para os filtros de loja e período
func GetDashboard(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, logger, err, "dashboard: filtros inválidos")
			return
		}

		response, err := service.GetDashboard(filters)
		if err != nil {
			writeError(w, logger, err, "dashboard: erro ao montar gráficos")
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id":    response.DatasetID,
			"store_nbr":     filters.StoreNbr,
			"days_returned": len(response.SalesOverTime),
		}).Info("dashboard: gráficos gerados com sucesso")

		writeJSON(w, logger, response)
	})
}
