package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=analytics.go -destination=mocks/analytics_mock.go -package=mocks

// dailySalesDays limita a série diária aos primeiros dias do mês
const dailySalesDays = 30

type AnalyticsRepository interface {
	TotalRevenue(ctx context.Context) (float64, error)
	TotalCustomers(ctx context.Context) (int64, error)
	TotalTransactions(ctx context.Context) (int64, error)
	AverageOrderValue(ctx context.Context) (float64, error)
	TotalProducts(ctx context.Context) (int64, error)
	SalesTrends(ctx context.Context, period domain.TrendPeriod) ([]domain.SalesTrend, error)
	TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error)
	TopCustomersByCluster(ctx context.Context, cluster domain.ClusterID, limit int) ([]domain.TopCustomer, error)
	DailySales(ctx context.Context) ([]domain.DailySales, error)
}

type analyticsRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsRepository(conn postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.scalar(ctx, psql.Select("COALESCE(SUM(fs.total_amount), 0)").From(salesTable), &total)
	return total, err
}

func (r *analyticsRepository) TotalCustomers(ctx context.Context) (int64, error) {
	var total int64
	err := r.scalar(ctx, psql.Select("COUNT(*)").From(customersTable), &total)
	return total, err
}

func (r *analyticsRepository) TotalTransactions(ctx context.Context) (int64, error) {
	var total int64
	err := r.scalar(ctx, psql.Select("COUNT(*)").From(salesTable), &total)
	return total, err
}

func (r *analyticsRepository) AverageOrderValue(ctx context.Context) (float64, error) {
	var avg float64
	err := r.scalar(ctx, psql.Select("COALESCE(AVG(fs.total_amount), 0)").From(salesTable), &avg)
	return avg, err
}

func (r *analyticsRepository) TotalProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.scalar(ctx, psql.Select("COUNT(*)").From(productsTable), &total)
	return total, err
}

func (r *analyticsRepository) scalar(ctx context.Context, builder squirrel.SelectBuilder, dest any) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryScalar(ctx, r.conn, dest, query, args...)
}

func (r *analyticsRepository) SalesTrends(ctx context.Context, period domain.TrendPeriod) ([]domain.SalesTrend, error) {
	bucket := "d.month"
	if period == domain.TrendPeriodQuarterly {
		bucket = "d.quarter"
	}

	query, args, err := psql.
		Select(
			"d.year",
			bucket,
			"COALESCE(SUM(fs.total_amount), 0) AS revenue",
			"COUNT(fs.transaction_id) AS transactions",
			"COALESCE(AVG(fs.total_amount), 0) AS avg_order_value",
		).
		From(salesTable).
		Join(joinDates).
		GroupBy("d.year", bucket).
		OrderBy("d.year", bucket).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, func(rows *sql.Rows) (domain.SalesTrend, error) {
		var (
			trend  domain.SalesTrend
			bucket int
		)
		if err := rows.Scan(&trend.Year, &bucket, &trend.Revenue, &trend.Transactions, &trend.AvgOrderValue); err != nil {
			return trend, err
		}

		if period == domain.TrendPeriodQuarterly {
			trend.Quarter = &bucket
		} else {
			trend.Month = &bucket
		}

		return trend, nil
	}, query, args...)
}

func (r *analyticsRepository) TopCustomers(ctx context.Context, limit int) ([]domain.TopCustomer, error) {
	query, args, err := psql.
		Select(
			"c.customer_id",
			"c.customer_code",
			"c.gender",
			"c.age",
			sumSpent+" AS total_spent",
			countOrders+" AS total_orders",
			domain.ClusterCaseSQL(sumSpent, countOrders)+" AS cluster_id",
		).
		From(salesTable).
		Join(joinCustomers).
		GroupBy("c.customer_id", "c.customer_code", "c.gender", "c.age").
		OrderBy("total_spent DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, scanTopCustomer, query, args...)
}

// TopCustomersByCluster classifica todos os clientes numa CTE e filtra pelo segmento pedido
func (r *analyticsRepository) TopCustomersByCluster(ctx context.Context, cluster domain.ClusterID, limit int) ([]domain.TopCustomer, error) {
	stats := psql.
		Select(
			"fs.customer_id",
			sumSpent+" AS total_spent",
			countOrders+" AS total_orders",
		).
		From(salesTable).
		GroupBy("fs.customer_id")

	cteQuery, _, err := psql.
		Select(
			"customer_id",
			domain.ClusterCaseSQL("total_spent", "total_orders")+" AS cluster_id",
		).
		FromSelect(stats, "customer_stats").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	query, args, err := psql.
		Select(
			"c.customer_id",
			"c.customer_code",
			"c.gender",
			"c.age",
			sumSpent+" AS total_spent",
			countOrders+" AS total_orders",
			"cc.cluster_id",
		).
		Prefix("WITH customer_clusters AS ("+cteQuery+")").
		From(salesTable).
		Join(joinCustomers).
		Join("customer_clusters cc ON c.customer_id = cc.customer_id").
		Where(squirrel.Eq{"cc.cluster_id": int(cluster)}).
		GroupBy("c.customer_id", "c.customer_code", "c.gender", "c.age", "cc.cluster_id").
		OrderBy("total_spent DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, scanTopCustomer, query, args...)
}

func (r *analyticsRepository) DailySales(ctx context.Context) ([]domain.DailySales, error) {
	query, args, err := psql.
		Select(
			"d.day",
			"COALESCE(SUM(fs.total_amount), 0) AS sales",
			"COUNT(fs.transaction_id) AS transactions",
		).
		From(datesTable).
		LeftJoin("fact.fact_sales fs ON d.date_id = fs.date_id").
		GroupBy("d.day").
		OrderBy("d.day").
		Limit(dailySalesDays).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, func(rows *sql.Rows) (domain.DailySales, error) {
		var d domain.DailySales
		err := rows.Scan(&d.Day, &d.Sales, &d.Transactions)
		return d, err
	}, query, args...)
}

func scanTopCustomer(rows *sql.Rows) (domain.TopCustomer, error) {
	var (
		c      domain.TopCustomer
		code   sql.NullString
		gender sql.NullString
		age    sql.NullInt64
	)

	if err := rows.Scan(&c.CustomerID, &code, &gender, &age, &c.TotalSpent, &c.TotalOrders, &c.ClusterID); err != nil {
		return c, err
	}

	c.CustomerCode = nullString(code)
	c.Gender = nullString(gender)
	c.Age = nullInt(age)

	return c, nil
}
