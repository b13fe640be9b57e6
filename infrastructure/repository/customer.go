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

//go:generate mockgen -source=customer.go -destination=mocks/customer_mock.go -package=mocks

type CustomerRepository interface {
	List(ctx context.Context, page, limit int) (*domain.PageResult[domain.Customer], error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) selectCustomers() squirrel.SelectBuilder {
	return psql.
		Select("c.customer_id", "c.customer_code", "c.gender", "c.age").
		From(customersTable)
}

func (r *customerRepository) List(ctx context.Context, page, limit int) (*domain.PageResult[domain.Customer], error) {
	query, args, err := r.selectCustomers().
		OrderBy("c.customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryPaginated(ctx, r.conn, scanCustomer, query, args, page, limit)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query, args, err := r.selectCustomers().
		Where(squirrel.Eq{"c.customer_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	var (
		customer domain.Customer
		code     sql.NullString
		gender   sql.NullString
		age      sql.NullInt64
	)
	if err := row.Scan(&customer.CustomerID, &code, &gender, &age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.NewQueryError(query, err)
	}

	customer.CustomerCode = nullString(code)
	customer.Gender = nullString(gender)
	customer.Age = nullInt(age)

	return &customer, nil
}

func scanCustomer(rows *sql.Rows) (domain.Customer, error) {
	var (
		customer domain.Customer
		code     sql.NullString
		gender   sql.NullString
		age      sql.NullInt64
	)

	if err := rows.Scan(&customer.CustomerID, &code, &gender, &age); err != nil {
		return customer, err
	}

	customer.CustomerCode = nullString(code)
	customer.Gender = nullString(gender)
	customer.Age = nullInt(age)

	return customer, nil
}
