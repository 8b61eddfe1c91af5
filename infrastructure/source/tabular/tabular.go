// Package tabular converte linhas de texto (CSV ou planilha) nas tabelas de vendas e feriados
package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	SalesColumns    = []string{"date", "store_nbr", "family", "sales"}
	HolidaysColumns = []string{"date", "type", "locale", "locale_name", "description", "transferred"}
)

// Header localiza as colunas pelo nome, independente da ordem no arquivo
type Header map[string]int

func NewHeader(row []string, required []string) (Header, error) {
	header := make(Header, len(row))
	for i, name := range row {
		header[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	for _, column := range required {
		if _, ok := header[column]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", column)
		}
	}

	return header, nil
}

func (h Header) value(row []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseSalesRow converte uma linha da tabela de vendas; line é usado nas mensagens de erro
func ParseSalesRow(h Header, row []string, line int) (domain.SalesRecord, error) {
	date, err := parseDate(h.value(row, "date"), line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	rawSales := h.value(row, "sales")
	sales, err := strconv.ParseFloat(rawSales, 64)
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("linha %d: valor de vendas inválido %q: %w", line, rawSales, err)
	}
	if sales < 0 {
		return domain.SalesRecord{}, fmt.Errorf("linha %d: valor de vendas negativo %v", line, sales)
	}

	return domain.SalesRecord{
		Date:     date,
		StoreNbr: h.value(row, "store_nbr"),
		Family:   h.value(row, "family"),
		Sales:    sales,
	}, nil
}

// ParseHolidayRow converte uma linha da tabela de feriados e eventos
func ParseHolidayRow(h Header, row []string, line int) (domain.HolidayRecord, error) {
	date, err := parseDate(h.value(row, "date"), line)
	if err != nil {
		return domain.HolidayRecord{}, err
	}

	rawTransferred := h.value(row, "transferred")
	transferred, err := strconv.ParseBool(rawTransferred)
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("linha %d: valor de transferred inválido %q: %w", line, rawTransferred, err)
	}

	return domain.HolidayRecord{
		Date:        date,
		Type:        h.value(row, "type"),
		Locale:      domain.HolidayLocale(h.value(row, "locale")),
		LocaleName:  h.value(row, "locale_name"),
		Description: h.value(row, "description"),
		Transferred: transferred,
	}, nil
}

func parseDate(value string, line int) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(domain.ErrInvalidDate, "linha %d: %q", line, value)
	}
	return date, nil
}

// IsBlank indica linhas sem nenhum valor preenchido
func IsBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
