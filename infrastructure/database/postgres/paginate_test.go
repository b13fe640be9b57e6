package postgres

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID   int64
	Name string
}

func scanTestRow(rows *sql.Rows) (testRow, error) {
	var r testRow
	err := rows.Scan(&r.ID, &r.Name)
	return r, err
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

const baseQuery = "SELECT id, name FROM dim.dim_customer WHERE gender = $1 ORDER BY id"

func TestQueryPaginated(t *testing.T) {
	t.Run("Renumera LIMIT/OFFSET após os parâmetros originais", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 10, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(int64(11), "C011").
				AddRow(int64(12), "C012").
				AddRow(int64(13), "C013"))

		mock.ExpectQuery("SELECT COUNT(*) FROM (" + baseQuery + ") AS count_subquery").
			WithArgs("F").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(23)))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, 2, 10)
		require.NoError(t, err)

		assert.Len(t, result.Rows, 3)
		assert.Equal(t, int64(11), result.Rows[0].ID)
		assert.Equal(t, 23, result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.Page)
		assert.Equal(t, 10, result.Pagination.Limit)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Total zero devolve lista vazia e zero páginas", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
		mock.ExpectQuery("SELECT COUNT(*) FROM (" + baseQuery + ") AS count_subquery").
			WithArgs("F").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, 1, 10)
		require.NoError(t, err)

		assert.NotNil(t, result.Rows)
		assert.Empty(t, result.Rows)
		assert.Equal(t, 0, result.Pagination.Total)
		assert.Equal(t, 0, result.Pagination.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Página e limite abaixo do mínimo são ajustados", func(t *testing.T) {
		db, mock := newMock(t)
		query := "SELECT id, name FROM dim.dim_customer ORDER BY id"

		mock.ExpectQuery(query+" LIMIT $1 OFFSET $2").
			WithArgs(1, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "C001"))
		mock.ExpectQuery("SELECT COUNT(*) FROM (" + query + ") AS count_subquery").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, query, nil, 0, -3)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Pagination.Page)
		assert.Equal(t, 1, result.Pagination.Limit)
		assert.Equal(t, 5, result.Pagination.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Página enorme é truncada sem offset negativo", func(t *testing.T) {
		db, mock := newMock(t)
		maxPage := math.MaxInt / 100

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 100, (maxPage-1)*100).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
		mock.ExpectQuery("SELECT COUNT(*) FROM (" + baseQuery + ") AS count_subquery").
			WithArgs("F").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(23)))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, math.MaxInt, 100)
		require.NoError(t, err)

		assert.Equal(t, maxPage, result.Pagination.Page)
		assert.Empty(t, result.Rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Página máxima com limite 1 mantém offset positivo", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 1, math.MaxInt-1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
		mock.ExpectQuery("SELECT COUNT(*) FROM (" + baseQuery + ") AS count_subquery").
			WithArgs("F").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(23)))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, math.MaxInt, 1)
		require.NoError(t, err)

		assert.Equal(t, math.MaxInt, result.Pagination.Page)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha na contagem falha a operação inteira", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "C001"))
		mock.ExpectQuery("SELECT COUNT(*) FROM (" + baseQuery + ") AS count_subquery").
			WithArgs("F").
			WillReturnError(errors.New("conexão perdida"))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, 1, 10)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, IsQueryError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha na query de dados não executa a contagem", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(baseQuery+" LIMIT $2 OFFSET $3").
			WithArgs("F", 10, 0).
			WillReturnError(errors.New("syntax error"))

		result, err := QueryPaginated(context.Background(), db, scanTestRow, baseQuery, []any{"F"}, 1, 10)

		assert.Nil(t, result)
		assert.True(t, IsQueryError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaginatedQuery(t *testing.T) {
	query, args := PaginatedQuery("SELECT 1 WHERE a = $1 AND b = $2", []any{"x", 7}, 50, 100)

	assert.Equal(t, "SELECT 1 WHERE a = $1 AND b = $2 LIMIT $3 OFFSET $4", query)
	assert.Equal(t, []any{"x", 7, 50, 100}, args)
}

func TestTotalPages(t *testing.T) {
	for total := 0; total <= 250; total++ {
		for _, limit := range []int{1, 3, 10, 100, 200} {
			expected := int(math.Ceil(float64(total) / float64(limit)))
			assert.Equal(t, expected, TotalPages(total, limit), "total=%d limit=%d", total, limit)
		}
	}
}
