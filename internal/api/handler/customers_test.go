package handler

import (
	"errors"
	"net/http"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog/mocks"
)

func TestListCustomers(t *testing.T) {
	page := &domain.PageResult[domain.Customer]{
		Rows: []domain.Customer{{CustomerID: 1, CustomerCode: "CUST-1", Gender: "Female", Age: 30}},
		Pagination: domain.Pagination{
			Page: 2, Limit: 100, Total: 150, TotalPages: 2,
		},
	}

	tests := []struct {
		name       string
		target     string
		setup      func(m *mocks.MockCataloger)
		wantStatus int
		validate   func(t *testing.T, body envelope)
	}{
		{
			name:   "Usa página 1 e limite 10 por padrão",
			target: "/api/customers",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListCustomers(gomock.Any(), 1, 10).Return(page, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body envelope) {
				assert.True(t, body.Success)
				require.NotNil(t, body.Pagination)
				assert.Equal(t, 150, body.Pagination.Total)
				assert.Equal(t, 2, body.Pagination.TotalPages)

				var customers []domain.Customer
				require.NoError(t, jsoniter.Unmarshal(body.Data, &customers))
				assert.Equal(t, page.Rows, customers)
			},
		},
		{
			name:   "Limite acima do máximo é truncado",
			target: "/api/customers?page=2&limit=5000",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListCustomers(gomock.Any(), 2, 100).Return(page, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Página e limite inválidos usam os padrões",
			target: "/api/customers?page=abc&limit=-3",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListCustomers(gomock.Any(), 1, 1).Return(page, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Erro do banco devolve 500",
			target: "/api/customers",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListCustomers(gomock.Any(), 1, 10).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body envelope) {
				assert.False(t, body.Success)
				assert.Equal(t, "Failed to fetch customers", body.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCataloger(ctrl)
			tt.setup(service)

			rec, body := serve(t, Customers(service, testPagination), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, body)
			}
		})
	}
}

func TestGetCustomer(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m *mocks.MockCataloger)
		wantStatus int
		wantError  string
	}{
		{
			name:   "Cliente encontrado",
			target: "/api/customers/7",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(7)).Return(&domain.Customer{CustomerID: 7}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Cliente inexistente devolve 404",
			target: "/api/customers/99",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(99)).Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Customer not found",
		},
		{
			name:       "ID não numérico devolve 404 sem consultar o banco",
			target:     "/api/customers/abc",
			setup:      func(m *mocks.MockCataloger) {},
			wantStatus: http.StatusNotFound,
			wantError:  "Customer not found",
		},
		{
			name:   "Erro do banco devolve 500",
			target: "/api/customers/7",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().GetCustomer(gomock.Any(), int64(7)).Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCataloger(ctrl)
			tt.setup(service)

			rec, body := serve(t, Customers(service, testPagination), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
