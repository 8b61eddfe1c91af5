package dashboard

import (
	"sort"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// FilterSales aplica o filtro de loja (vazio = todas) e o intervalo de datas
// inclusivo; limites nil deixam o intervalo aberto.
func FilterSales(records []domain.SalesRecord, filters domain.SalesFilters) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if filters.StoreNbr != "" && record.StoreNbr != filters.StoreNbr {
			continue
		}

		date := utils.TruncateDay(record.Date)
		if filters.StartDate != nil && date.Before(utils.TruncateDay(*filters.StartDate)) {
			continue
		}
		if filters.EndDate != nil && date.After(utils.TruncateDay(*filters.EndDate)) {
			continue
		}

		filtered = append(filtered, record)
	}
	return filtered
}

// uniqueStores retorna os números de loja distintos, em ordem numérica quando possível
func uniqueStores(records []domain.SalesRecord) []string {
	seen := make(map[string]bool)
	stores := make([]string, 0)
	for _, record := range records {
		if seen[record.StoreNbr] {
			continue
		}
		seen[record.StoreNbr] = true
		stores = append(stores, record.StoreNbr)
	}

	sort.Slice(stores, func(i, j int) bool {
		a, errA := strconv.Atoi(stores[i])
		b, errB := strconv.Atoi(stores[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if errA == nil || errB == nil {
			return errA == nil
		}
		return stores[i] < stores[j]
	})

	return stores
}

func dataRange(records []domain.SalesRecord) domain.DataRange {
	var r domain.DataRange
	for _, record := range records {
		date := record.Date
		if r.MinDate == nil || date.Before(*r.MinDate) {
			r.MinDate = &date
		}
		if r.MaxDate == nil || date.After(*r.MaxDate) {
			r.MaxDate = &date
		}
	}
	return r
}
