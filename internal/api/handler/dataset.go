package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

type storesResponse struct {
	Stores []string `json:"stores"`
}

// ListStores retorna as lojas presentes na tabela de vendas, usadas no seletor de loja
func ListStores(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := service.ListStores()
		if err != nil {
			writeError(w, logger, err, "stores: erro ao listar lojas")
			return
		}

		writeJSON(w, logger, storesResponse{Stores: stores})
	})
}

func GetDatasetInfo(service dashboard.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.GetDatasetInfo()
		if err != nil {
			writeError(w, logger, err, "dataset: erro ao consultar snapshot")
			return
		}

		writeJSON(w, logger, info)
	})
}
