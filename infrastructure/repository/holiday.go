package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	holidaysTable = "holidays_events h"
)

type HolidayRepository interface {
	ListHolidays(ctx context.Context) ([]domain.HolidayRecord, error)
	ReplaceHolidays(ctx context.Context, records []domain.HolidayRecord) error
}

type holidayRepository struct {
	conn postgres.Conn
}

func NewHolidayRepository(conn postgres.Conn) HolidayRepository {
	return &holidayRepository{
		conn: conn,
	}
}

// A ordem por id preserva a ordem das linhas do arquivo de origem,
// usada como desempate entre feriados da mesma data
func listHolidaysQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("h.date", "h.type", "h.locale", "h.locale_name", "h.description", "h.transferred").
		From(holidaysTable).
		OrderBy("h.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func insertHolidaysQuery(records []domain.HolidayRecord) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert("holidays_events").
		Columns("date", "type", "locale", "locale_name", "description", "transferred").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.Date,
			record.Type,
			string(record.Locale),
			record.LocaleName,
			record.Description,
			record.Transferred,
		)
	}

	return query
}

func (r *holidayRepository) ListHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	sqlQuery, args, err := listHolidaysQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.HolidayRecord, 0)
	for rows.Next() {
		var (
			record domain.HolidayRecord
			locale string
		)
		if err := rows.Scan(
			&record.Date,
			&record.Type,
			&locale,
			&record.LocaleName,
			&record.Description,
			&record.Transferred,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear feriado: %w", err)
		}
		record.Locale = domain.HolidayLocale(locale)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ReplaceHolidays substitui todo o conteúdo da tabela holidays_events em uma única transação
func (r *holidayRepository) ReplaceHolidays(ctx context.Context, records []domain.HolidayRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM holidays_events"); err != nil {
			return fmt.Errorf("erro ao limpar tabela holidays_events: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			sqlQuery, args, err := insertHolidaysQuery(records[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return wrapExecError(err)
			}
		}

		return nil
	})
}
