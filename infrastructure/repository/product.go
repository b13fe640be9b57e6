package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks

type ProductRepository interface {
	List(ctx context.Context, page, limit int) (*domain.PageResult[domain.Product], error)
	GetByID(ctx context.Context, id int64) (*domain.ProductDetail, error)
	TopCategories(ctx context.Context, limit int) ([]domain.CategorySummary, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) List(ctx context.Context, page, limit int) (*domain.PageResult[domain.Product], error) {
	query, args, err := psql.
		Select("p.product_id", "p.category", "p.price_per_unit").
		From(productsTable).
		OrderBy("p.product_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryPaginated(ctx, r.conn, scanProduct, query, args, page, limit)
}

// GetByID devolve o produto com o agregado de vendas; produtos nunca vendidos vêm zerados
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	query, args, err := psql.
		Select(
			"p.product_id",
			"p.category",
			"p.price_per_unit",
			"COUNT(fs.transaction_id) AS total_sales",
			"COALESCE(SUM(fs.quantity), 0) AS total_quantity",
			"COALESCE(SUM(fs.total_amount), 0) AS total_revenue",
		).
		From(productsTable).
		LeftJoin("fact.fact_sales fs ON p.product_id = fs.product_id").
		Where(squirrel.Eq{"p.product_id": id}).
		GroupBy("p.product_id", "p.category", "p.price_per_unit").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var detail domain.ProductDetail
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&detail.ProductID,
		&detail.Category,
		&detail.PricePerUnit,
		&detail.TotalSales,
		&detail.TotalQuantity,
		&detail.TotalRevenue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.NewQueryError(query, err)
	}

	return &detail, nil
}

func (r *productRepository) TopCategories(ctx context.Context, limit int) ([]domain.CategorySummary, error) {
	query, args, err := psql.
		Select(
			"p.category",
			"COUNT(fs.transaction_id) AS transaction_count",
			"COALESCE(SUM(fs.quantity), 0) AS total_quantity",
			"COALESCE(SUM(fs.total_amount), 0) AS total_revenue",
		).
		From(salesTable).
		Join(joinProducts).
		GroupBy("p.category").
		OrderBy("total_revenue DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, func(rows *sql.Rows) (domain.CategorySummary, error) {
		var c domain.CategorySummary
		err := rows.Scan(&c.Category, &c.TransactionCount, &c.TotalQuantity, &c.TotalRevenue)
		return c, err
	}, query, args...)
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var p domain.Product
	err := rows.Scan(&p.ProductID, &p.Category, &p.PricePerUnit)
	return p, err
}
