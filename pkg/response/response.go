// Package response escreve o envelope JSON comum a todas as rotas
package response

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/retail-analytics/dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Note       string             `json:"note,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Period     string             `json:"period,omitempty"`
}

type Option func(*Envelope)

// WithNote sinaliza ao cliente que o dado veio de um fallback
func WithNote(note string) Option {
	return func(e *Envelope) {
		e.Note = note
	}
}

func WithPagination(p domain.Pagination) Option {
	return func(e *Envelope) {
		e.Pagination = &p
	}
}

func WithPeriod(period string) Option {
	return func(e *Envelope) {
		e.Period = period
	}
}

// OK escreve {success: true, data} com status 200
func OK(w http.ResponseWriter, data any, opts ...Option) {
	env := Envelope{Success: true, Data: data}
	for _, opt := range opts {
		opt(&env)
	}
	JSON(w, http.StatusOK, env)
}

// Fail escreve {success: false, error} com o status informado
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Error: message})
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}
