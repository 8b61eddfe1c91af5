// Package dashboard mantém o snapshot das tabelas carregadas e monta as tabelas
// de cada gráfico a partir dos filtros de loja e período.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/holiday"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var _ Analyzer = (*Service)(nil)

type Settings struct {
	TopN              int
	HolidayWindowDays int
}

type Service struct {
	source   DataSource
	settings Settings
	now      func() time.Time

	mu      sync.RWMutex
	dataset *domain.Dataset
}

func NewService(cfg *config.Config, source DataSource) *Service {
	return &Service{
		source: source,
		settings: Settings{
			TopN:              cfg.Dashboard.TopN,
			HolidayWindowDays: cfg.Dashboard.HolidayWindowDays,
		},
		now: time.Now,
	}
}

// Reload lê as duas tabelas da fonte e troca o snapshot atual. Em caso de erro
// o snapshot anterior continua em uso.
func (s *Service) Reload(ctx context.Context) (*domain.DatasetInfo, error) {
	startTime := s.now()

	sales, err := s.source.LoadSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar tabela de vendas: %w", err)
	}

	holidays, err := s.source.LoadHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar tabela de feriados: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do dataset: %w", err)
	}

	dataset := &domain.Dataset{
		ID:       id,
		Source:   s.source.Name(),
		LoadedAt: s.now(),
		Sales:    sales,
		Holidays: holidays,
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"dataset_id":   dataset.ID,
		"source":       dataset.Source,
		"sales_rows":   len(sales),
		"holiday_rows": len(holidays),
		"duration":     s.now().Sub(startTime).String(),
	}).Info("Dataset carregado")

	return describe(dataset), nil
}

func (s *Service) current() (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return s.dataset, nil
}

// slice aplica os filtros e devolve o snapshot usado, as linhas filtradas e os totais diários
func (s *Service) slice(filters domain.SalesFilters) (*domain.Dataset, []domain.SalesRecord, []domain.DailySales, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, nil, nil, err
	}

	records := FilterSales(dataset.Sales, filters)
	return dataset, records, aggregating.DailyTotals(records), nil
}

func (s *Service) GetDashboard(filters domain.SalesFilters) (*domain.DashboardResponse, error) {
	dataset, records, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": dataset.ID,
		"store_nbr":  filters.StoreNbr,
		"rows":       len(records),
		"days":       len(daily),
	}).Debug("dashboard: recalculando gráficos")

	return &domain.DashboardResponse{
		DatasetID:                dataset.ID,
		Filters:                  filters,
		TopProducts:              aggregating.TopNByCategory(records, aggregating.ByFamily, s.settings.TopN),
		SalesOverTime:            daily,
		TopHolidays:              aggregating.HolidaySalesRanking(dataset.Holidays, daily, s.settings.HolidayWindowDays, s.settings.TopN),
		WeekdayDistribution:      aggregating.MeanSalesByWeekdayOverall(daily),
		MonthWeekdayDistribution: aggregating.MonthWeekdayDistribution(daily),
	}, nil
}

func (s *Service) GetTopProducts(filters domain.SalesFilters, limit int) ([]domain.CategoryTotal, error) {
	_, records, _, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return aggregating.TopNByCategory(records, aggregating.ByFamily, limit), nil
}

func (s *Service) GetDailySales(filters domain.SalesFilters) ([]domain.DailySales, error) {
	_, _, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return daily, nil
}

func (s *Service) GetSalesInWindow(filters domain.SalesFilters, endDate string, days int) (float64, error) {
	_, _, daily, err := s.slice(filters)
	if err != nil {
		return 0, err
	}
	return aggregating.SalesInWindow(daily, endDate, days)
}

func (s *Service) GetWeekdayDistribution(filters domain.SalesFilters) (domain.WeekdayAggregate, error) {
	_, _, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return aggregating.MeanSalesByWeekdayOverall(daily), nil
}

func (s *Service) GetMonthWeekdayDistribution(filters domain.SalesFilters) (domain.MonthWeekdayMatrix, error) {
	_, _, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return aggregating.MonthWeekdayDistribution(daily), nil
}

// GetMonthWeekday retorna as médias por dia da semana de um único mês. Mês
// desconhecido não é erro: o resultado é a tabela zerada.
func (s *Service) GetMonthWeekday(filters domain.SalesFilters, month string) (domain.WeekdayAggregate, error) {
	_, _, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return aggregating.MeanSalesByWeekday(aggregating.WithCalendar(daily), month), nil
}

func (s *Service) GetHolidayRanking(filters domain.SalesFilters, days int, limit int) ([]domain.HolidaySales, error) {
	if days < 0 {
		return nil, fmt.Errorf("holiday ranking: %d days: %w", days, domain.ErrInvalidWindow)
	}

	dataset, _, daily, err := s.slice(filters)
	if err != nil {
		return nil, err
	}
	return aggregating.HolidaySalesRanking(dataset.Holidays, daily, days, limit), nil
}

func (s *Service) ResolveHoliday(date string, city string, state string) (string, error) {
	dataset, err := s.current()
	if err != nil {
		return "", err
	}
	return holiday.Resolve(dataset.Holidays, date, city, state)
}

func (s *Service) ListStores() ([]string, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return uniqueStores(dataset.Sales), nil
}

func (s *Service) GetDatasetInfo() (*domain.DatasetInfo, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return describe(dataset), nil
}

func describe(dataset *domain.Dataset) *domain.DatasetInfo {
	return &domain.DatasetInfo{
		ID:          dataset.ID,
		Source:      dataset.Source,
		LoadedAt:    dataset.LoadedAt,
		SalesRows:   len(dataset.Sales),
		HolidayRows: len(dataset.Holidays),
		Stores:      len(uniqueStores(dataset.Sales)),
		Range:       dataRange(dataset.Sales),
	}
}
