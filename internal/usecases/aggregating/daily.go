// Package aggregating transforma as linhas de vendas nas tabelas resumidas consumidas pelos gráficos
package aggregating

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// DailyTotals soma as vendas por data (todas as lojas e famílias), em ordem crescente de data
func DailyTotals(records []domain.SalesRecord) []domain.DailySales {
	totals := make(map[time.Time]float64)
	for _, record := range records {
		totals[utils.TruncateDay(record.Date)] += record.Sales
	}

	daily := make([]domain.DailySales, 0, len(totals))
	for date, sales := range totals {
		daily = append(daily, domain.DailySales{Date: date, Sales: sales})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	return daily
}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, errors.Wrapf(domain.ErrInvalidDate, "%q", date)
	}
	return parsed, nil
}
