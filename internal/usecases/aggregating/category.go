package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// CategoryKey extrai a categoria de agrupamento de uma linha de vendas
type CategoryKey func(domain.SalesRecord) string

var (
	ByFamily CategoryKey = func(r domain.SalesRecord) string { return r.Family }
	ByStore  CategoryKey = func(r domain.SalesRecord) string { return r.StoreNbr }
)

// TopNByCategory soma as vendas por categoria e retorna as n maiores em ordem
// decrescente. Empates mantêm a ordem em que a categoria apareceu primeiro.
func TopNByCategory(records []domain.SalesRecord, key CategoryKey, n int) []domain.CategoryTotal {
	if n <= 0 {
		return []domain.CategoryTotal{}
	}

	index := make(map[string]int)
	totals := make([]domain.CategoryTotal, 0)
	for _, record := range records {
		category := key(record)
		i, exists := index[category]
		if !exists {
			i = len(totals)
			index[category] = i
			totals = append(totals, domain.CategoryTotal{Category: category})
		}
		totals[i].Sales += record.Sales
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Sales > totals[j].Sales
	})

	if len(totals) > n {
		totals = totals[:n]
	}

	return totals
}
