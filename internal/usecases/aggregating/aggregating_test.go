package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyTotals(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: day(2023, 1, 2), StoreNbr: "1", Family: "GROCERY I", Sales: 10},
		{Date: day(2023, 1, 1), StoreNbr: "1", Family: "BEVERAGES", Sales: 5},
		{Date: day(2023, 1, 2), StoreNbr: "2", Family: "BEVERAGES", Sales: 2.5},
		{Date: day(2023, 1, 1), StoreNbr: "2", Family: "GROCERY I", Sales: 1},
	}

	daily := DailyTotals(records)

	require.Len(t, daily, 2)
	assert.Equal(t, day(2023, 1, 1), daily[0].Date)
	assert.Equal(t, 6.0, daily[0].Sales)
	assert.Equal(t, day(2023, 1, 2), daily[1].Date)
	assert.Equal(t, 12.5, daily[1].Sales)
}

func TestDailyTotals_SameDayInDifferentLocations(t *testing.T) {
	guayaquil := time.FixedZone("ECT", -5*60*60)
	records := []domain.SalesRecord{
		{Date: day(2023, 1, 1), StoreNbr: "1", Family: "A", Sales: 5},
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, guayaquil), StoreNbr: "2", Family: "A", Sales: 3},
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local), StoreNbr: "3", Family: "A", Sales: 2},
	}

	daily := DailyTotals(records)

	require.Len(t, daily, 1)
	assert.Equal(t, day(2023, 1, 1), daily[0].Date)
	assert.Equal(t, 10.0, daily[0].Sales)
}

func TestDailyTotals_Empty(t *testing.T) {
	assert.Empty(t, DailyTotals(nil))
}

func TestDailyTotals_PreservesSumOverRange(t *testing.T) {
	records := make([]domain.SalesRecord, 0)
	for i := 0; i < 60; i++ {
		records = append(records, domain.SalesRecord{
			Date:     day(2023, 1, 1).AddDate(0, 0, i%30),
			StoreNbr: []string{"1", "2", "3"}[i%3],
			Family:   []string{"A", "B"}[i%2],
			Sales:    float64(i),
		})
	}

	daily := DailyTotals(records)
	start, end := day(2023, 1, 5), day(2023, 1, 20)

	var expected float64
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			expected += r.Sales
		}
	}

	var actual float64
	for _, d := range daily {
		if !d.Date.Before(start) && !d.Date.After(end) {
			actual += d.Sales
		}
	}

	assert.Equal(t, expected, actual)
}

func TestSalesInWindow(t *testing.T) {
	daily := []domain.DailySales{
		{Date: day(2023, 1, 1), Sales: 5},
		{Date: day(2023, 1, 5), Sales: 3},
	}

	tests := []struct {
		name     string
		daily    []domain.DailySales
		endDate  string
		nDays    int
		expected float64
	}{
		{
			name:     "Janela cobre as duas linhas",
			daily:    daily,
			endDate:  "2023-01-05",
			nDays:    10,
			expected: 8,
		},
		{
			name:     "Janela sem registros retorna zero",
			daily:    daily,
			endDate:  "2023-01-03",
			nDays:    1,
			expected: 0,
		},
		{
			name:     "Limite inferior é inclusivo",
			daily:    daily,
			endDate:  "2023-01-05",
			nDays:    4,
			expected: 8,
		},
		{
			name:     "Limite superior é inclusivo",
			daily:    daily,
			endDate:  "2023-01-05",
			nDays:    0,
			expected: 3,
		},
		{
			name:     "Registros posteriores à data final são ignorados",
			daily:    daily,
			endDate:  "2023-01-04",
			nDays:    30,
			expected: 5,
		},
		{
			name:     "Tabela vazia",
			daily:    nil,
			endDate:  "2023-01-05",
			nDays:    10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := SalesInWindow(tt.daily, tt.endDate, tt.nDays)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestSalesInWindow_Errors(t *testing.T) {
	_, err := SalesInWindow(nil, "05/01/2023", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = SalesInWindow(nil, "2023-01-05", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestSalesInWindow_EmptyTableIsZero(t *testing.T) {
	for n := 0; n <= 30; n++ {
		total, err := SalesInWindow([]domain.DailySales{}, "2023-01-05", n)
		require.NoError(t, err)
		assert.Zero(t, total)
	}
}

func TestSalesInWindow_MonotonicInDays(t *testing.T) {
	daily := make([]domain.DailySales, 0)
	for i := 0; i < 40; i++ {
		daily = append(daily, domain.DailySales{Date: day(2023, 3, 1).AddDate(0, 0, i), Sales: float64(i % 7)})
	}

	previous := 0.0
	for n := 0; n <= 50; n++ {
		total, err := SalesInWindow(daily, "2023-03-31", n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, previous, "n=%d", n)
		previous = total
	}
}

func TestWithCalendar(t *testing.T) {
	rows := WithCalendar([]domain.DailySales{{Date: day(2023, 5, 1), Sales: 4}})

	require.Len(t, rows, 1)
	assert.Equal(t, "Monday", rows[0].Weekday)
	assert.Equal(t, "May", rows[0].Month)
	assert.Equal(t, 4.0, rows[0].Sales)
}

func TestMeanSalesByWeekday(t *testing.T) {
	// 2023-05-01 e 2023-05-08 são segundas; 2023-05-02 é terça
	rows := WithCalendar([]domain.DailySales{
		{Date: day(2023, 5, 1), Sales: 10},
		{Date: day(2023, 5, 8), Sales: 20},
		{Date: day(2023, 5, 2), Sales: 7},
		{Date: day(2023, 6, 5), Sales: 1000},
	})

	result := MeanSalesByWeekday(rows, "May")

	require.Len(t, result, 7)
	for i, weekday := range domain.Weekdays {
		assert.Equal(t, weekday, result[i].Weekday)
	}
	assert.Equal(t, 15.0, result.Sales("Monday"))
	assert.Equal(t, 7.0, result.Sales("Tuesday"))
	for _, weekday := range []string{"Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		assert.Zero(t, result.Sales(weekday), weekday)
	}
}

func TestMeanSalesByWeekday_AlwaysSevenEntries(t *testing.T) {
	tests := []struct {
		name  string
		rows  []domain.WeekdaySales
		month string
	}{
		{name: "Entrada vazia", rows: nil, month: "May"},
		{name: "Mês desconhecido", rows: WithCalendar([]domain.DailySales{{Date: day(2023, 5, 1), Sales: 1}}), month: "Maio"},
		{name: "Mês sem vendas", rows: WithCalendar([]domain.DailySales{{Date: day(2023, 5, 1), Sales: 1}}), month: "June"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MeanSalesByWeekday(tt.rows, tt.month)
			require.Len(t, result, 7)
			for i, entry := range result {
				assert.Equal(t, domain.Weekdays[i], entry.Weekday)
				assert.Zero(t, entry.Sales)
			}
		})
	}
}

func TestMeanSalesByWeekdayOverall(t *testing.T) {
	daily := []domain.DailySales{
		{Date: day(2023, 5, 1), Sales: 10}, // Monday
		{Date: day(2023, 6, 5), Sales: 30}, // Monday
		{Date: day(2023, 5, 7), Sales: 4},  // Sunday
	}

	result := MeanSalesByWeekdayOverall(daily)

	require.Len(t, result, 7)
	assert.Equal(t, "Monday", result[0].Weekday)
	assert.Equal(t, 20.0, result[0].Sales)
	assert.Equal(t, "Sunday", result[6].Weekday)
	assert.Equal(t, 4.0, result[6].Sales)
	assert.Zero(t, result.Sales("Friday"))
}

func TestMonthWeekdayDistribution(t *testing.T) {
	daily := []domain.DailySales{
		{Date: day(2023, 12, 4), Sales: 8}, // Monday
		{Date: day(2023, 1, 3), Sales: 2},  // Tuesday
		{Date: day(2024, 1, 2), Sales: 4},  // Tuesday
	}

	matrix := MonthWeekdayDistribution(daily)

	require.Len(t, matrix, 2)
	assert.Equal(t, "January", matrix[0].Month)
	assert.Equal(t, 3.0, matrix[0].Weekdays.Sales("Tuesday"))
	assert.Len(t, matrix[0].Weekdays, 7)
	assert.Equal(t, "December", matrix[1].Month)
	assert.Equal(t, 8.0, matrix[1].Weekdays.Sales("Monday"))
	assert.Zero(t, matrix[1].Weekdays.Sales("Tuesday"))
}

func TestMonthWeekdayDistribution_Empty(t *testing.T) {
	assert.Empty(t, MonthWeekdayDistribution(nil))
}

func TestTopNByCategory(t *testing.T) {
	records := []domain.SalesRecord{
		{StoreNbr: "1", Family: "BEVERAGES", Sales: 5},
		{StoreNbr: "1", Family: "GROCERY I", Sales: 10},
		{StoreNbr: "2", Family: "BREAD/BAKERY", Sales: 5},
		{StoreNbr: "2", Family: "BEVERAGES", Sales: 3},
		{StoreNbr: "3", Family: "DAIRY", Sales: 1},
	}

	tests := []struct {
		name     string
		key      CategoryKey
		n        int
		expected []domain.CategoryTotal
	}{
		{
			name: "Top 2 famílias",
			key:  ByFamily,
			n:    2,
			expected: []domain.CategoryTotal{
				{Category: "GROCERY I", Sales: 10},
				{Category: "BEVERAGES", Sales: 8},
			},
		},
		{
			name: "Menos categorias que n retorna todas",
			key:  ByFamily,
			n:    10,
			expected: []domain.CategoryTotal{
				{Category: "GROCERY I", Sales: 10},
				{Category: "BEVERAGES", Sales: 8},
				{Category: "BREAD/BAKERY", Sales: 5},
				{Category: "DAIRY", Sales: 1},
			},
		},
		{
			name: "Agrupamento por loja",
			key:  ByStore,
			n:    3,
			expected: []domain.CategoryTotal{
				{Category: "1", Sales: 15},
				{Category: "2", Sales: 8},
				{Category: "3", Sales: 1},
			},
		},
		{
			name:     "n zero retorna vazio",
			key:      ByFamily,
			n:        0,
			expected: []domain.CategoryTotal{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopNByCategory(records, tt.key, tt.n))
		})
	}
}

func TestTopNByCategory_TiesKeepFirstEncountered(t *testing.T) {
	records := []domain.SalesRecord{
		{Family: "B", Sales: 2},
		{Family: "A", Sales: 2},
		{Family: "C", Sales: 2},
	}

	result := TopNByCategory(records, ByFamily, 2)

	require.Len(t, result, 2)
	assert.Equal(t, "B", result[0].Category)
	assert.Equal(t, "A", result[1].Category)
}

func TestHolidaySalesRanking(t *testing.T) {
	daily := []domain.DailySales{
		{Date: day(2022, 12, 20), Sales: 100},
		{Date: day(2022, 12, 25), Sales: 50},
		{Date: day(2023, 12, 24), Sales: 300},
		{Date: day(2023, 5, 1), Sales: 40},
	}

	holidays := []domain.HolidayRecord{
		{Date: day(2022, 12, 25), Locale: domain.HolidayLocaleNational, Description: "Navidad"},
		{Date: day(2023, 12, 25), Locale: domain.HolidayLocaleNational, Description: "Navidad"},
		{Date: day(2022, 12, 24), Locale: domain.HolidayLocaleNational, Description: "Navidad-1"},
		{Date: day(2023, 5, 1), Locale: domain.HolidayLocaleNational, Description: "Dia del Trabajo"},
		{Date: day(2023, 5, 2), Locale: domain.HolidayLocaleNational, Description: "Puente Dia del Trabajo"},
		{Date: day(2023, 8, 10), Locale: domain.HolidayLocaleNational, Description: "Primer Grito de Independencia"},
	}

	ranking := HolidaySalesRanking(holidays, daily, 10, 10)

	require.Len(t, ranking, 3)
	// Navidad: (150 + 300) / 2
	assert.Equal(t, domain.HolidaySales{Description: "Navidad", SalesBefore: 225}, ranking[0])
	assert.Equal(t, domain.HolidaySales{Description: "Dia del Trabajo", SalesBefore: 40}, ranking[1])
	assert.Equal(t, domain.HolidaySales{Description: "Primer Grito de Independencia", SalesBefore: 0}, ranking[2])

	top := HolidaySalesRanking(holidays, daily, 10, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Navidad", top[0].Description)

	assert.Empty(t, HolidaySalesRanking(holidays, daily, 10, 0))
	assert.Empty(t, HolidaySalesRanking(nil, daily, 10, 10))
}

func TestIsKnownMonth(t *testing.T) {
	assert.True(t, IsKnownMonth("January"))
	assert.False(t, IsKnownMonth("january"))
	assert.False(t, IsKnownMonth("Janeiro"))
}
