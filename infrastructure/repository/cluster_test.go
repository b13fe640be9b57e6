package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterRepository_CustomerSpend(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClusterRepository(db)

	mock.ExpectQuery(q("GROUP BY c.customer_id, c.customer_code, c.gender, c.age ORDER BY total_spent DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "customer_code", "gender", "age", "total_spent", "total_orders"}).
			AddRow(int64(1), "CUST001", "M", int64(34), "15000.00", int64(3)).
			AddRow(int64(2), "CUST002", "F", nil, "500.00", int64(3)))

	rows, err := repo.CustomerSpend(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 15000.0, rows[0].TotalSpent)
	assert.Equal(t, 0, rows[1].Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}
