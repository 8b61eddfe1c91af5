package csvsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const salesCSV = `id,date,store_nbr,family,sales,onpromotion
0,2013-01-01,1,AUTOMOTIVE,0.0,0
1,2013-01-01,1,BABY CARE,0.0,0
2,2013-01-02,1,BEAUTY,2.0,0
3,2013-01-02,25,BEVERAGES,810.5,3
`

const holidaysCSV = `date,type,locale,locale_name,description,transferred
2012-03-02,Holiday,Local,Manta,Fundacion de Manta,False
2012-04-01,Holiday,Regional,Cotopaxi,Provincializacion de Cotopaxi,False
2012-10-09,Holiday,National,Ecuador,Independencia de Guayaquil,True
2012-10-12,Transfer,National,Ecuador,Traslado Independencia de Guayaquil,False
`

func TestReadSales(t *testing.T) {
	records, err := ReadSales(context.Background(), strings.NewReader(salesCSV))
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, domain.SalesRecord{
		Date:     time.Date(2013, 1, 2, 0, 0, 0, 0, time.UTC),
		StoreNbr: "25",
		Family:   "BEVERAGES",
		Sales:    810.5,
	}, records[3])
}

func TestReadSales_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Arquivo vazio", input: "", want: "cabeçalho"},
		{name: "Coluna ausente", input: "id,date,family,sales\n", want: "store_nbr"},
		{name: "Data inválida", input: "date,store_nbr,family,sales\n2013/01/01,1,A,1\n", want: "linha 2"},
		{name: "Vendas inválidas", input: "date,store_nbr,family,sales\n2013-01-01,1,A,1\n2013-01-02,1,A,x\n", want: "linha 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSales(context.Background(), strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestReadSales_SkipsBlankLines(t *testing.T) {
	records, err := ReadSales(context.Background(), strings.NewReader("date,store_nbr,family,sales\n2013-01-01,1,A,1\n,,,\n2013-01-02,1,A,2\n"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadHolidays(t *testing.T) {
	records, err := ReadHolidays(context.Background(), strings.NewReader(holidaysCSV))
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, domain.HolidayLocaleRegional, records[1].Locale)
	assert.Equal(t, "Cotopaxi", records[1].LocaleName)
	assert.True(t, records[2].Transferred)
	assert.Equal(t, "Transfer", records[3].Type)
}

func TestSource_LoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	salesPath := filepath.Join(dir, "sales.csv")
	holidaysPath := filepath.Join(dir, "holidays_events.csv")
	require.NoError(t, os.WriteFile(salesPath, []byte(salesCSV), 0o644))
	require.NoError(t, os.WriteFile(holidaysPath, []byte(holidaysCSV), 0o644))

	source := New(salesPath, holidaysPath)
	assert.Equal(t, "csv", source.Name())

	sales, err := source.LoadSales(context.Background())
	require.NoError(t, err)
	assert.Len(t, sales, 4)

	holidays, err := source.LoadHolidays(context.Background())
	require.NoError(t, err)
	assert.Len(t, holidays, 4)
}

func TestSource_MissingFile(t *testing.T) {
	source := New(filepath.Join(t.TempDir(), "nope.csv"), "")

	_, err := source.LoadSales(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = source.LoadHolidays(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
