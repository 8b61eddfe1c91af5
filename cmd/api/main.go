package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataSource, closeSource, err := source.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a fonte de dados")
	}

	dashboardService := dashboard.NewService(cfg, dataSource)

	// Sem o dataset inicial nenhum gráfico pode ser calculado
	info, err := dashboardService.Reload(ctx)
	if err != nil {
		closeSource()
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"source":     info.Source,
		"sales_rows": info.SalesRows,
		"stores":     info.Stores,
	}).Info("Dataset inicial carregado com sucesso")

	reloadService := scheduler.NewDatasetReloadService(dashboardService, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, reloadService, closeSource)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
