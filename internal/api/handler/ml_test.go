package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/clustering"
	clusteringmocks "github.com/retail-analytics/dashboard-api/internal/usecases/clustering/mocks"
	forecastingmocks "github.com/retail-analytics/dashboard-api/internal/usecases/forecasting/mocks"
)

var testForecast = config.Forecast{HistoryMonths: 6, MaxPeriods: 120}

func TestGetForecast(t *testing.T) {
	points := []domain.ForecastPoint{
		{Period: 1, Forecast: 1020, ConfidenceLower: 918, ConfidenceUpper: 1122},
	}

	tests := []struct {
		name     string
		target   string
		setup    func(m *forecastingmocks.MockForecaster)
		validate func(t *testing.T, body envelope)
	}{
		{
			name:   "Repassa a resposta do serviço de ML sem nota",
			target: "/api/ml/forecast",
			setup: func(m *forecastingmocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), 12, "simple").Return(&domain.ForecastResult{
					External: json.RawMessage(`{"forecast":[1,2,3]}`),
				})
			},
			validate: func(t *testing.T, body envelope) {
				assert.Empty(t, body.Note)
				assert.JSONEq(t, `{"forecast":[1,2,3]}`, string(body.Data))
			},
		},
		{
			name:   "Fallback devolve os pontos com nota",
			target: "/api/ml/forecast?periods=1&model_type=arima",
			setup: func(m *forecastingmocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), 1, "arima").Return(&domain.ForecastResult{
					Points:   points,
					Fallback: true,
				})
			},
			validate: func(t *testing.T, body envelope) {
				assert.Equal(t, "Using fallback simple forecast", body.Note)

				var got []domain.ForecastPoint
				require.NoError(t, jsoniter.Unmarshal(body.Data, &got))
				assert.Equal(t, points, got)
			},
		},
		{
			name:   "Períodos inválidos voltam para 12",
			target: "/api/ml/forecast?periods=0",
			setup: func(m *forecastingmocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), 12, "simple").Return(&domain.ForecastResult{Fallback: true})
			},
		},
		{
			name:   "Períodos acima do máximo são truncados",
			target: "/api/ml/forecast?periods=5000",
			setup: func(m *forecastingmocks.MockForecaster) {
				m.EXPECT().Forecast(gomock.Any(), 120, "simple").Return(&domain.ForecastResult{Fallback: true})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			forecaster := forecastingmocks.NewMockForecaster(ctrl)
			tt.setup(forecaster)

			rec, body := serve(t, ML(forecaster, clusteringmocks.NewMockClusterer(ctrl), testForecast), tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, body.Success)
			if tt.validate != nil {
				tt.validate(t, body)
			}
		})
	}
}

func TestGetClusters(t *testing.T) {
	mlReport := &domain.ClusterReport{
		Source:   domain.ClusterSourceMLService,
		Clusters: []domain.ClusterMember{{CustomerID: 1, Monetary: 100, Frequency: 2, Cluster: domain.ClusterNew}},
	}
	fallbackReport := &domain.ClusterReport{Source: domain.ClusterSourceFallback}

	tests := []struct {
		name       string
		target     string
		setup      func(m *clusteringmocks.MockClusterer)
		wantStatus int
		wantNote   string
		wantError  string
	}{
		{
			name:   "Clusters do serviço de ML",
			target: "/api/ml/clusters",
			setup: func(m *clusteringmocks.MockClusterer) {
				m.EXPECT().Clusters(gomock.Any()).Return(mlReport, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Clusters de fallback levam nota",
			target: "/api/ml/clusters",
			setup: func(m *clusteringmocks.MockClusterer) {
				m.EXPECT().Clusters(gomock.Any()).Return(fallbackReport, nil)
			},
			wantStatus: http.StatusOK,
			wantNote:   "Using fallback cluster data",
		},
		{
			name:   "Serviço e fallback indisponíveis devolvem 503",
			target: "/api/ml/clusters",
			setup: func(m *clusteringmocks.MockClusterer) {
				m.EXPECT().Clusters(gomock.Any()).
					Return(nil, fmt.Errorf("%w: db down", clustering.ErrServiceUnavailable))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "ML service temporarily unavailable",
		},
		{
			name:   "Rota de fallback explícita",
			target: "/api/ml/clusters/fallback",
			setup: func(m *clusteringmocks.MockClusterer) {
				m.EXPECT().FallbackClusters(gomock.Any()).Return(fallbackReport, nil)
			},
			wantStatus: http.StatusOK,
			wantNote:   "Using fallback cluster data",
		},
		{
			name:   "Erro na rota de fallback devolve 500",
			target: "/api/ml/clusters/fallback",
			setup: func(m *clusteringmocks.MockClusterer) {
				m.EXPECT().FallbackClusters(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch fallback clusters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clusterer := clusteringmocks.NewMockClusterer(ctrl)
			tt.setup(clusterer)

			rec, body := serve(t, ML(forecastingmocks.NewMockForecaster(ctrl), clusterer, testForecast), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNote, body.Note)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
