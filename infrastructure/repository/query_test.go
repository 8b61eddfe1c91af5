package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestListSalesQuery(t *testing.T) {
	sqlQuery, args, err := listSalesQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT s.date, s.store_nbr, s.family, s.sales FROM sales s ORDER BY s.date ASC, s.id ASC", sqlQuery)
	assert.Empty(t, args)
}

func TestListHolidaysQuery(t *testing.T) {
	sqlQuery, args, err := listHolidaysQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT h.date, h.type, h.locale, h.locale_name, h.description, h.transferred FROM holidays_events h ORDER BY h.id ASC", sqlQuery)
	assert.Empty(t, args)
}

func TestInsertSalesQuery(t *testing.T) {
	day := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.SalesRecord{
		{Date: day, StoreNbr: "1", Family: "AUTOMOTIVE", Sales: 2},
		{Date: day, StoreNbr: "2", Family: "BEVERAGES", Sales: 10.5},
	}

	sqlQuery, args, err := insertSalesQuery(records).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO sales (date,store_nbr,family,sales) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)", sqlQuery)
	assert.Equal(t, []interface{}{day, "1", "AUTOMOTIVE", 2.0, day, "2", "BEVERAGES", 10.5}, args)
}

func TestInsertHolidaysQuery(t *testing.T) {
	day := time.Date(2012, 3, 2, 0, 0, 0, 0, time.UTC)
	records := []domain.HolidayRecord{
		{
			Date:        day,
			Type:        "Holiday",
			Locale:      domain.HolidayLocaleLocal,
			LocaleName:  "Manta",
			Description: "Fundacion de Manta",
		},
	}

	sqlQuery, args, err := insertHolidaysQuery(records).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO holidays_events (date,type,locale,locale_name,description,transferred) VALUES ($1,$2,$3,$4,$5,$6)", sqlQuery)
	assert.Equal(t, []interface{}{day, "Holiday", "Local", "Manta", "Fundacion de Manta", false}, args)
}
