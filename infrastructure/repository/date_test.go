package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dateColumns = []string{"date_id", "full_date", "year", "month", "quarter"}

func TestDateRepository(t *testing.T) {
	day := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Todas as datas distintas em ordem decrescente", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDateRepository(db)

		mock.ExpectQuery(q("SELECT DISTINCT d.date_id, d.full_date, d.year, d.month, d.quarter FROM dim.dim_date d ORDER BY d.full_date DESC")).
			WillReturnRows(sqlmock.NewRows(dateColumns).AddRow(int64(73), day, 2023, 3, 1))

		dates, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, day, dates[0].FullDate)
		assert.Equal(t, 1, dates[0].Quarter)
	})

	t.Run("Filtra por ano", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDateRepository(db)

		mock.ExpectQuery(q("WHERE d.year = $1 ORDER BY d.full_date ASC")).
			WithArgs(2023).
			WillReturnRows(sqlmock.NewRows(dateColumns))

		dates, err := repo.ListByYear(context.Background(), 2023)
		require.NoError(t, err)
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	})

	t.Run("Filtra por ano e mês", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDateRepository(db)

		mock.ExpectQuery(q("WHERE d.year = $1 AND d.month = $2 ORDER BY d.full_date ASC")).
			WithArgs(2023, 3).
			WillReturnRows(sqlmock.NewRows(dateColumns).AddRow(int64(73), day, 2023, 3, 1))

		dates, err := repo.ListByMonth(context.Background(), 2023, 3)
		require.NoError(t, err)
		assert.Len(t, dates, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
