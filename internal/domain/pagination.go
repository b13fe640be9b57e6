package domain

// Pagination são os metadados devolvidos junto das listas paginadas
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PageResult é uma página de linhas com seus metadados
type PageResult[T any] struct {
	Rows       []T
	Pagination Pagination
}
