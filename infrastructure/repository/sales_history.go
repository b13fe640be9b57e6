package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=sales_history.go -destination=mocks/sales_history_mock.go -package=mocks

// SalesHistoryRepository fornece o histórico mensal usado pela previsão de fallback
type SalesHistoryRepository interface {
	// RecentMonthlySales devolve o total vendido por mês, do mais recente para o mais antigo
	RecentMonthlySales(ctx context.Context, months int) ([]float64, error)
}

type salesHistoryRepository struct {
	conn postgres.Queryer
}

func NewSalesHistoryRepository(conn postgres.Queryer) SalesHistoryRepository {
	return &salesHistoryRepository{
		conn: conn,
	}
}

func (r *salesHistoryRepository) RecentMonthlySales(ctx context.Context, months int) ([]float64, error) {
	query, args, err := psql.
		Select(
			"date_trunc('month', d.full_date) AS sales_month",
			"COALESCE(SUM(fs.total_amount), 0) AS monthly_sales",
		).
		From(salesTable).
		Join(joinDates).
		Where("d.full_date >= CURRENT_DATE - make_interval(months => ?)", months).
		GroupBy("sales_month").
		OrderBy("sales_month DESC").
		Limit(uint64(months)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, func(rows *sql.Rows) (float64, error) {
		var (
			month time.Time
			total float64
		)
		err := rows.Scan(&month, &total)
		return total, err
	}, query, args...)
}
