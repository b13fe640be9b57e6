package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=cluster.go -destination=mocks/cluster_mock.go -package=mocks

type ClusterRepository interface {
	// CustomerSpend agrega gasto e pedidos de cada cliente com ao menos uma venda
	CustomerSpend(ctx context.Context) ([]domain.CustomerSpend, error)
}

type clusterRepository struct {
	conn postgres.Queryer
}

func NewClusterRepository(conn postgres.Queryer) ClusterRepository {
	return &clusterRepository{
		conn: conn,
	}
}

func (r *clusterRepository) CustomerSpend(ctx context.Context) ([]domain.CustomerSpend, error) {
	query, args, err := psql.
		Select(
			"c.customer_id",
			"c.customer_code",
			"c.gender",
			"c.age",
			sumSpent+" AS total_spent",
			countOrders+" AS total_orders",
		).
		From(salesTable).
		Join(joinCustomers).
		GroupBy("c.customer_id", "c.customer_code", "c.gender", "c.age").
		OrderBy("total_spent DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, func(rows *sql.Rows) (domain.CustomerSpend, error) {
		var (
			s      domain.CustomerSpend
			code   sql.NullString
			gender sql.NullString
			age    sql.NullInt64
		)

		if err := rows.Scan(&s.CustomerID, &code, &gender, &age, &s.TotalSpent, &s.TotalOrders); err != nil {
			return s, err
		}

		s.CustomerCode = nullString(code)
		s.Gender = nullString(gender)
		s.Age = nullInt(age)

		return s, nil
	}, query, args...)
}
