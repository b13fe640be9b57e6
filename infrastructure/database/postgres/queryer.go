package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Queryer é satisfeito por *sql.DB, *sql.Tx e *Connection
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QueryError envolve qualquer falha do driver ao executar uma query
// (sintaxe, violação de restrição, perda de conexão)
type QueryError struct {
	Query string
	Code  string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("erro ao executar a query: %v (código: %s)", e.Err, e.Code)
	}
	return fmt.Sprintf("erro ao executar a query: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError cria um QueryError preservando o código do postgres quando houver
func NewQueryError(query string, err error) *QueryError {
	qe := &QueryError{Query: query, Err: err}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		qe.Code = string(pqErr.Code)
	}

	return qe
}

// IsQueryError informa se err (ou algum erro envolvido) é um QueryError
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// Query executa a query e devolve as linhas, envolvendo falhas em QueryError.
// Quem chama é responsável por fechar as linhas.
func Query(ctx context.Context, q Queryer, query string, args ...any) (*sql.Rows, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewQueryError(query, err)
	}
	return rows, nil
}

// RowScanner converte a linha corrente em T
type RowScanner[T any] func(rows *sql.Rows) (T, error)

// QueryAll executa a query e converte todas as linhas com scan.
// Nunca devolve slice nil em caso de sucesso.
func QueryAll[T any](ctx context.Context, q Queryer, scan RowScanner[T], query string, args ...any) ([]T, error) {
	rows, err := Query(ctx, q, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, NewQueryError(query, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, NewQueryError(query, err)
	}

	return result, nil
}

// QueryScalar executa uma query de uma linha e uma coluna e escaneia em dest
func QueryScalar(ctx context.Context, q Queryer, dest any, query string, args ...any) error {
	if err := q.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		return NewQueryError(query, err)
	}
	return nil
}
