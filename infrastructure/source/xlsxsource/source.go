// Package xlsxsource lê as tabelas de vendas e feriados da primeira aba de planilhas Excel
package xlsxsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source/tabular"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

type Source struct {
	salesPath    string
	holidaysPath string
}

func New(salesPath string, holidaysPath string) *Source {
	return &Source{
		salesPath:    salesPath,
		holidaysPath: holidaysPath,
	}
}

func (s *Source) Name() string {
	return "xlsx"
}

func (s *Source) LoadSales(ctx context.Context) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0)
	err := readSheet(ctx, s.salesPath, tabular.SalesColumns, func(h tabular.Header, row []string, line int) error {
		record, err := tabular.ParseSalesRow(h, row, line)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path": s.salesPath,
		"rows": len(records),
	}).Info("xlsxsource: tabela de vendas carregada")

	return records, nil
}

func (s *Source) LoadHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	records := make([]domain.HolidayRecord, 0)
	err := readSheet(ctx, s.holidaysPath, tabular.HolidaysColumns, func(h tabular.Header, row []string, line int) error {
		record, err := tabular.ParseHolidayRow(h, row, line)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path": s.holidaysPath,
		"rows": len(records),
	}).Info("xlsxsource: tabela de feriados carregada")

	return records, nil
}

func readSheet(ctx context.Context, path string, required []string, fn func(tabular.Header, []string, int) error) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("xlsxsource: erro ao fechar planilha")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%s: planilha sem abas", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return fmt.Errorf("%s: erro ao ler aba %s: %w", path, sheets[0], err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("%s: aba vazia, cabeçalho esperado", path)
	}
	headerRow, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("%s: erro ao ler cabeçalho: %w", path, err)
	}

	header, err := tabular.NewHeader(headerRow, required)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for line := 2; rows.Next(); line++ {
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		row, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return fmt.Errorf("%s: linha %d: %w", path, line, err)
		}

		if tabular.IsBlank(row) {
			continue
		}

		serialToDate(header, row)

		if err := fn(header, row, line); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return rows.Error()
}

// Maior número serial aceito pelo Excel (9999-12-31)
const maxExcelSerial = 2958465

// serialToDate reescreve a coluna date como YYYY-MM-DD quando a célula é uma
// data do Excel (número serial). Datas gravadas como texto ficam intactas.
func serialToDate(header tabular.Header, row []string) {
	i, ok := header["date"]
	if !ok || i >= len(row) {
		return
	}

	serial, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil || serial <= 0 || serial > maxExcelSerial {
		return
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return
	}
	row[i] = date.Format(time.DateOnly)
}
