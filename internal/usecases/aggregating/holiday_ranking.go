package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/holiday"
)

// HolidaySalesRanking calcula, para cada feriado, o total vendido nos nDays
// anteriores (inclusive o próprio dia), descarta pontes e traslados, faz a média
// por descrição e retorna os n feriados com maior média.
func HolidaySalesRanking(holidays []domain.HolidayRecord, daily []domain.DailySales, nDays int, n int) []domain.HolidaySales {
	if n <= 0 {
		return []domain.HolidaySales{}
	}

	index := make(map[string]int)
	sums := make([]float64, 0)
	counts := make([]int, 0)
	ranking := make([]domain.HolidaySales, 0)

	for _, h := range holidays {
		if holiday.IsBridgeOrShift(h.Description) {
			continue
		}

		i, exists := index[h.Description]
		if !exists {
			i = len(ranking)
			index[h.Description] = i
			ranking = append(ranking, domain.HolidaySales{Description: h.Description})
			sums = append(sums, 0)
			counts = append(counts, 0)
		}

		sums[i] += SalesInWindowAt(daily, h.Date, nDays)
		counts[i]++
	}

	for i := range ranking {
		ranking[i].SalesBefore = sums[i] / float64(counts[i])
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SalesBefore > ranking[j].SalesBefore
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}

	return ranking
}
