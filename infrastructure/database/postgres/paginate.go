package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/retail-analytics/dashboard-api/internal/domain"
)

// PaginatedQuery monta a query da página, com LIMIT e OFFSET numerados depois
// dos parâmetros originais, e os argumentos correspondentes
func PaginatedQuery(query string, args []any, limit, offset int) (string, []any) {
	paginated := fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)+1, len(args)+2)

	paginatedArgs := make([]any, 0, len(args)+2)
	paginatedArgs = append(paginatedArgs, args...)
	paginatedArgs = append(paginatedArgs, limit, offset)

	return paginated, paginatedArgs
}

// CountQuery envolve a query base em um SELECT COUNT(*) com os mesmos parâmetros
func CountQuery(query string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS count_subquery", query)
}

// QueryPaginated executa a query base paginada e a contagem derivada.
//
// A query base deve ser um único SELECT sem LIMIT/OFFSET e vir de código
// confiável; apenas os valores trafegam como parâmetros. As duas queries rodam
// fora de transação, então o total pode divergir das linhas sob escrita concorrente.
func QueryPaginated[T any](
	ctx context.Context,
	q Queryer,
	scan RowScanner[T],
	query string,
	args []any,
	page, limit int,
) (*domain.PageResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	offset := (page - 1) * limit

	paginatedQuery, paginatedArgs := PaginatedQuery(query, args, limit, offset)
	rows, err := QueryAll(ctx, q, scan, paginatedQuery, paginatedArgs...)
	if err != nil {
		return nil, err
	}

	var total int
	if err := QueryScalar(ctx, q, &total, CountQuery(query), args...); err != nil {
		return nil, err
	}

	return &domain.PageResult[T]{
		Rows: rows,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: TotalPages(total, limit),
		},
	}, nil
}

// TotalPages calcula ceil(total/limit)
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
