package dashboard

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DataSource carrega as duas tabelas de entrada (vendas e feriados)
type DataSource interface {
	Name() string
	LoadSales(ctx context.Context) ([]domain.SalesRecord, error)
	LoadHolidays(ctx context.Context) ([]domain.HolidayRecord, error)
}

// Reloader recarrega o snapshot do dataset a partir da fonte
type Reloader interface {
	Reload(ctx context.Context) (*domain.DatasetInfo, error)
}

// Analyzer é a interface consumida pela camada HTTP
type Analyzer interface {
	Reloader

	// GetDashboard calcula as tabelas de todos os gráficos para os filtros informados
	GetDashboard(filters domain.SalesFilters) (*domain.DashboardResponse, error)

	GetTopProducts(filters domain.SalesFilters, limit int) ([]domain.CategoryTotal, error)
	GetDailySales(filters domain.SalesFilters) ([]domain.DailySales, error)
	GetSalesInWindow(filters domain.SalesFilters, endDate string, days int) (float64, error)
	GetWeekdayDistribution(filters domain.SalesFilters) (domain.WeekdayAggregate, error)
	GetMonthWeekdayDistribution(filters domain.SalesFilters) (domain.MonthWeekdayMatrix, error)
	GetMonthWeekday(filters domain.SalesFilters, month string) (domain.WeekdayAggregate, error)
	GetHolidayRanking(filters domain.SalesFilters, days int, limit int) ([]domain.HolidaySales, error)

	// ResolveHoliday retorna a descrição do feriado observado na data para a cidade/estado
	ResolveHoliday(date string, city string, state string) (string, error)

	ListStores() ([]string, error)
	GetDatasetInfo() (*domain.DatasetInfo, error)
}

