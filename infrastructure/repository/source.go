package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Source expõe os repositórios como fonte de dados do dashboard
type Source struct {
	sales    SalesRepository
	holidays HolidayRepository
}

func NewSource(sales SalesRepository, holidays HolidayRepository) *Source {
	return &Source{
		sales:    sales,
		holidays: holidays,
	}
}

func (s *Source) Name() string {
	return "postgres"
}

func (s *Source) LoadSales(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithField("rows", len(records)).Info("repository: tabela de vendas carregada")
	return records, nil
}

func (s *Source) LoadHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	records, err := s.holidays.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithField("rows", len(records)).Info("repository: tabela de feriados carregada")
	return records, nil
}
