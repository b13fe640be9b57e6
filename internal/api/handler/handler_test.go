package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/retail-analytics/dashboard-api/internal/api/handler/router"
	"github.com/retail-analytics/dashboard-api/internal/config"
)

var testPagination = config.Pagination{
	CustomersMaxLimit: 100,
	ProductsMaxLimit:  200,
	TopListMaxLimit:   100,
}

type envelope struct {
	Success    bool                `json:"success"`
	Data       jsoniter.RawMessage `json:"data"`
	Error      string              `json:"error"`
	Note       string              `json:"note"`
	Period     string              `json:"period"`
	Pagination *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// serve monta o router com as rotas informadas e executa uma requisição GET
func serve(t *testing.T, routes []router.Route, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rt := router.New(
		router.WithRoutes(routes...),
		router.WithNotFound(NotFoundHandler()),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}
