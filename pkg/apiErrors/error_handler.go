package apiErrors

import (
	"net/http"

	"github.com/retail-analytics/dashboard-api/pkg/response"
)

const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Parâmetro de rota inválido

	// Erros de recurso
	ErrResourceNotFound = "RES_001" // Entidade ou rota inexistente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrServiceDown       = "SRV_004" // Dependência externa e fallback indisponíveis
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrResourceNotFound:  http.StatusNotFound,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrServiceDown:       http.StatusServiceUnavailable,
}

// StatusFor devolve o status HTTP do código, ou 500 para códigos desconhecidos
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve {success: false, error: message}. O detalhe do erro nunca
// vai para o cliente; quem chama registra no log.
func WriteError(w http.ResponseWriter, code string, message string) {
	response.Fail(w, StatusFor(code), message)
}
