package utils

import (
	"math"
	"net/url"
	"strconv"
)

// MaxPage limita a página para que o offset calculado não estoure
const MaxPage = math.MaxInt32

// ParsePositiveInt devolve o inteiro do parâmetro ou fallback quando ausente ou inválido
func ParsePositiveInt(query url.Values, key string, fallback int) int {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return fallback
	}
	return value
}

// ParseLimit lê um limite de lista. Ausente ou inválido usa o padrão, abaixo de 1
// vira 1 e acima do máximo é truncado.
func ParseLimit(query url.Values, defaultLimit, maxLimit int) int {
	limit := ParsePositiveInt(query, "limit", defaultLimit)

	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit
}

// ParsePagination lê page e limit. Páginas inválidas ou menores que 1 viram 1
// e acima de MaxPage são truncadas.
func ParsePagination(query url.Values, defaultLimit, maxLimit int) (page, limit int) {
	page = ParsePositiveInt(query, "page", 1)
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}

	return page, ParseLimit(query, defaultLimit, maxLimit)
}
