package aggregating

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// SalesInWindow soma as vendas no intervalo fechado [endDate - nDays, endDate].
// endDate segue o formato YYYY-MM-DD.
func SalesInWindow(daily []domain.DailySales, endDate string, nDays int) (float64, error) {
	end, err := parseDate(endDate)
	if err != nil {
		return 0, errors.WithMessage(err, "sales window")
	}

	if nDays < 0 {
		return 0, errors.Wrapf(domain.ErrInvalidWindow, "sales window: %d days", nDays)
	}

	return SalesInWindowAt(daily, end, nDays), nil
}

// SalesInWindowAt é a versão de SalesInWindow para datas já convertidas.
// Sem registros na janela o total é 0.
func SalesInWindowAt(daily []domain.DailySales, endDate time.Time, nDays int) float64 {
	end := utils.TruncateDay(endDate)
	start := end.AddDate(0, 0, -nDays)

	var total float64
	for _, d := range daily {
		date := utils.TruncateDay(d.Date)
		if date.Before(start) || date.After(end) {
			continue
		}
		total += d.Sales
	}

	return total
}
