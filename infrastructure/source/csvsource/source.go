// Package csvsource lê as tabelas de vendas e feriados de arquivos CSV
package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/source/tabular"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
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
	return "csv"
}

func (s *Source) LoadSales(ctx context.Context) ([]domain.SalesRecord, error) {
	f, err := os.Open(s.salesPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo de vendas: %w", err)
	}
	defer f.Close()

	records, err := ReadSales(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.salesPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": s.salesPath,
		"rows": len(records),
	}).Info("csvsource: tabela de vendas carregada")

	return records, nil
}

func (s *Source) LoadHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	f, err := os.Open(s.holidaysPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo de feriados: %w", err)
	}
	defer f.Close()

	records, err := ReadHolidays(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.holidaysPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": s.holidaysPath,
		"rows": len(records),
	}).Info("csvsource: tabela de feriados carregada")

	return records, nil
}

// ReadSales lê o CSV de vendas (id,date,store_nbr,family,sales,onpromotion)
func ReadSales(ctx context.Context, r io.Reader) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0)
	err := readRows(ctx, r, tabular.SalesColumns, func(h tabular.Header, row []string, line int) error {
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
	return records, nil
}

// ReadHolidays lê o CSV de feriados (date,type,locale,locale_name,description,transferred)
func ReadHolidays(ctx context.Context, r io.Reader) ([]domain.HolidayRecord, error) {
	records := make([]domain.HolidayRecord, 0)
	err := readRows(ctx, r, tabular.HolidaysColumns, func(h tabular.Header, row []string, line int) error {
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
	return records, nil
}

func readRows(ctx context.Context, r io.Reader, required []string, fn func(tabular.Header, []string, int) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("arquivo vazio, cabeçalho esperado")
	}
	if err != nil {
		return fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	header, err := tabular.NewHeader(headerRow, required)
	if err != nil {
		return err
	}

	for line := 2; ; line++ {
		// Cancelamento verificado a cada bloco de linhas
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("linha %d: %w", line, err)
		}

		if tabular.IsBlank(row) {
			continue
		}

		if err := fn(header, row, line); err != nil {
			return err
		}
	}
}
