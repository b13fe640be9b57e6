package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog/mocks"
)

func TestDateRoutes(t *testing.T) {
	dates := []domain.DateDimension{
		{DateID: 20240101, FullDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Year: 2024, Month: 1, Quarter: 1},
	}

	tests := []struct {
		name       string
		target     string
		setup      func(m *mocks.MockCataloger)
		wantStatus int
		wantError  string
	}{
		{
			name:   "Todas as datas",
			target: "/api/dates",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListDates(gomock.Any()).Return(dates, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Datas do ano",
			target: "/api/dates/2024",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().DatesByYear(gomock.Any(), 2024).Return(dates, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Datas do mês",
			target: "/api/dates/2024/1",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().DatesByMonth(gomock.Any(), 2024, 1).Return(dates, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Ano inválido devolve 400",
			target:     "/api/dates/abc",
			setup:      func(m *mocks.MockCataloger) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid year",
		},
		{
			name:       "Mês inválido devolve 400",
			target:     "/api/dates/2024/jan",
			setup:      func(m *mocks.MockCataloger) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid month",
		},
		{
			name:   "Erro do banco devolve 500",
			target: "/api/dates",
			setup: func(m *mocks.MockCataloger) {
				m.EXPECT().ListDates(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCataloger(ctrl)
			tt.setup(service)

			rec, body := serve(t, Dates(service), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
