package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=date.go -destination=mocks/date_mock.go -package=mocks

type DateRepository interface {
	ListAll(ctx context.Context) ([]domain.DateDimension, error)
	ListByYear(ctx context.Context, year int) ([]domain.DateDimension, error)
	ListByMonth(ctx context.Context, year, month int) ([]domain.DateDimension, error)
}

type dateRepository struct {
	conn postgres.Queryer
}

func NewDateRepository(conn postgres.Queryer) DateRepository {
	return &dateRepository{
		conn: conn,
	}
}

func (r *dateRepository) selectDates() squirrel.SelectBuilder {
	return psql.
		Select("d.date_id", "d.full_date", "d.year", "d.month", "d.quarter").
		From(datesTable)
}

func (r *dateRepository) ListAll(ctx context.Context) ([]domain.DateDimension, error) {
	return r.list(ctx, r.selectDates().
		Distinct().
		OrderBy("d.full_date DESC"))
}

func (r *dateRepository) ListByYear(ctx context.Context, year int) ([]domain.DateDimension, error) {
	return r.list(ctx, r.selectDates().
		Where(squirrel.Eq{"d.year": year}).
		OrderBy("d.full_date ASC"))
}

func (r *dateRepository) ListByMonth(ctx context.Context, year, month int) ([]domain.DateDimension, error) {
	return r.list(ctx, r.selectDates().
		Where(squirrel.Eq{"d.year": year}).
		Where(squirrel.Eq{"d.month": month}).
		OrderBy("d.full_date ASC"))
}

func (r *dateRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.DateDimension, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return postgres.QueryAll(ctx, r.conn, scanDate, query, args...)
}

func scanDate(rows *sql.Rows) (domain.DateDimension, error) {
	var d domain.DateDimension
	err := rows.Scan(&d.DateID, &d.FullDate, &d.Year, &d.Month, &d.Quarter)
	return d, err
}
