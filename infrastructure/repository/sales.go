// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable = "sales s"

	// Limite de linhas por INSERT, abaixo do máximo de parâmetros do Postgres
	insertBatchSize = 1000
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . SalesRepository,HolidayRepository

type SalesRepository interface {
	ListSales(ctx context.Context) ([]domain.SalesRecord, error)
	ReplaceSales(ctx context.Context, records []domain.SalesRecord) error
}

type salesRepository struct {
	conn postgres.Conn
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func listSalesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("s.date", "s.store_nbr", "s.family", "s.sales").
		From(salesTable).
		OrderBy("s.date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func insertSalesQuery(records []domain.SalesRecord) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert("sales").
		Columns("date", "store_nbr", "family", "sales").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(record.Date, record.StoreNbr, record.Family, record.Sales)
	}

	return query
}

func (r *salesRepository) ListSales(ctx context.Context) ([]domain.SalesRecord, error) {
	sqlQuery, args, err := listSalesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(&record.Date, &record.StoreNbr, &record.Family, &record.Sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ReplaceSales substitui todo o conteúdo da tabela sales em uma única transação
func (r *salesRepository) ReplaceSales(ctx context.Context, records []domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sales"); err != nil {
			return fmt.Errorf("erro ao limpar tabela sales: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			sqlQuery, args, err := insertSalesQuery(records[start:end]).ToSql()
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

func wrapExecError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
