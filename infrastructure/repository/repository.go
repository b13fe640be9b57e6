// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
)

const (
	salesTable     = "fact.fact_sales fs"
	customersTable = "dim.dim_customer c"
	productsTable  = "dim.dim_product p"
	datesTable     = "dim.dim_date d"

	joinCustomers = "dim.dim_customer c ON fs.customer_id = c.customer_id"
	joinDates     = "dim.dim_date d ON fs.date_id = d.date_id"
	joinProducts  = "dim.dim_product p ON fs.product_id = p.product_id"

	sumSpent    = "SUM(fs.total_amount)"
	countOrders = "COUNT(fs.transaction_id)"
)

// psql usa placeholders $1, $2... do postgres
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt(ni sql.NullInt64) int {
	if ni.Valid {
		return int(ni.Int64)
	}
	return 0
}
