// Package source escolhe a implementação de fonte de dados conforme a configuração
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source/csvsource"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source/xlsxsource"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboard"
)

// Open retorna a fonte configurada e uma função para liberar seus recursos
func Open(ctx context.Context, cfg *config.Config) (dashboard.DataSource, func(), error) {
	driver, err := Driver(cfg.DataSource)
	if err != nil {
		return nil, nil, err
	}

	switch driver {
	case config.SourceXLSX:
		return xlsxsource.New(cfg.DataSource.SalesPath, cfg.DataSource.HolidaysPath), func() {}, nil
	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
		}

		closeFn := func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("source: erro ao fechar conexão com o banco")
			}
		}

		return repository.NewSource(
			repository.NewSalesRepository(conn),
			repository.NewHolidayRepository(conn),
		), closeFn, nil
	default:
		return csvsource.New(cfg.DataSource.SalesPath, cfg.DataSource.HolidaysPath), func() {}, nil
	}
}

// Driver resolve o tipo de fonte; arquivos .xlsx são lidos como planilha mesmo com DATA_SOURCE=csv
func Driver(cfg config.DataSource) (string, error) {
	switch cfg.Driver {
	case config.SourceXLSX, config.SourcePostgres:
		return cfg.Driver, nil
	case config.SourceCSV, "":
		if isWorkbook(cfg.SalesPath) && isWorkbook(cfg.HolidaysPath) {
			return config.SourceXLSX, nil
		}
		return config.SourceCSV, nil
	default:
		return "", errors.Wrapf(domain.ErrUnknownSource, "%q", cfg.Driver)
	}
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
