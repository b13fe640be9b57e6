// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "errors"

// ErrNotFound indica que a entidade consultada não existe no warehouse
var ErrNotFound = errors.New("entity not found")

// Customer representa uma linha de dim.dim_customer
type Customer struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerCode string `json:"customer_code"`
	Gender       string `json:"gender"`
	Age          int    `json:"age"`
}
