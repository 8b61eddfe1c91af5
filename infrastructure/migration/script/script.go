// Script de carga: lê as tabelas de vendas e feriados dos arquivos configurados
// (SALES_PATH e HOLIDAYS_PATH, CSV ou XLSX) e substitui o conteúdo das tabelas no Postgres.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source"
	"github.com/vfg2006/sales-analytics-api/internal/config"
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

	logrus.Info("Iniciando script de carga...")
	startTime := time.Now()
	ctx := context.Background()

	// A carga sempre lê arquivos; xlsx é detectado pela extensão
	fileCfg := *cfg
	fileCfg.DataSource.Driver = config.SourceCSV

	files, _, err := source.Open(ctx, &fileCfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir arquivos de origem")
	}

	sales, err := files.LoadSales(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler tabela de vendas")
	}

	holidays, err := files.LoadHolidays(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler tabela de feriados")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar schema")
	}

	if err := repository.NewSalesRepository(conn).ReplaceSales(ctx, sales); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar vendas")
	}
	logrus.Infof("Inseridas %d linhas em sales", len(sales))

	if err := repository.NewHolidayRepository(conn).ReplaceHolidays(ctx, holidays); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar feriados")
	}
	logrus.Infof("Inseridas %d linhas em holidays_events", len(holidays))

	logrus.Infof("Carga concluída em %v!", time.Since(startTime))
}
