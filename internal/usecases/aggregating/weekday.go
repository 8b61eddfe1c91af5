package aggregating

import (
	"slices"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// WithCalendar deriva os nomes em inglês do dia da semana e do mês de cada linha
func WithCalendar(daily []domain.DailySales) []domain.WeekdaySales {
	rows := make([]domain.WeekdaySales, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, domain.WeekdaySales{
			Date:    d.Date,
			Weekday: d.Date.Weekday().String(),
			Month:   d.Date.Month().String(),
			Sales:   d.Sales,
		})
	}
	return rows
}

// MeanSalesByWeekday calcula a média de vendas por dia da semana dentro do mês
// informado. Dias sem vendas entram com 0, então o resultado sempre tem 7 entradas.
func MeanSalesByWeekday(rows []domain.WeekdaySales, month string) domain.WeekdayAggregate {
	filtered := make([]domain.WeekdaySales, 0, len(rows))
	for _, row := range rows {
		if row.Month == month {
			filtered = append(filtered, row)
		}
	}
	return meanByWeekday(filtered)
}

// MeanSalesByWeekdayOverall é a média por dia da semana em todo o período, sem filtro de mês
func MeanSalesByWeekdayOverall(daily []domain.DailySales) domain.WeekdayAggregate {
	return meanByWeekday(WithCalendar(daily))
}

// MonthWeekdayDistribution monta a matriz mês x dia da semana. Meses sem vendas
// não geram linha.
func MonthWeekdayDistribution(daily []domain.DailySales) domain.MonthWeekdayMatrix {
	rows := WithCalendar(daily)

	present := make(map[string]bool)
	for _, row := range rows {
		present[row.Month] = true
	}

	matrix := make(domain.MonthWeekdayMatrix, 0, len(present))
	for _, month := range domain.Months {
		if !present[month] {
			continue
		}
		matrix = append(matrix, domain.MonthWeekdayRow{
			Month:    month,
			Weekdays: MeanSalesByWeekday(rows, month),
		})
	}

	return matrix
}

func meanByWeekday(rows []domain.WeekdaySales) domain.WeekdayAggregate {
	sums := make(map[string]float64, len(domain.Weekdays))
	counts := make(map[string]int, len(domain.Weekdays))
	for _, row := range rows {
		sums[row.Weekday] += row.Sales
		counts[row.Weekday]++
	}

	aggregate := make(domain.WeekdayAggregate, 0, len(domain.Weekdays))
	for _, weekday := range domain.Weekdays {
		mean := 0.0
		if counts[weekday] > 0 {
			mean = sums[weekday] / float64(counts[weekday])
		}
		aggregate = append(aggregate, domain.WeekdayMean{Weekday: weekday, Sales: mean})
	}

	return aggregate
}

// IsKnownMonth indica se o nome corresponde a um mês do calendário em inglês
func IsKnownMonth(month string) bool {
	return slices.Contains(domain.Months, month)
}
