package handler

import (
	"errors"
	"net/http"


	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/clustering"
	"github.com/retail-analytics/dashboard-api/internal/usecases/forecasting"
	"github.com/retail-analytics/dashboard-api/pkg/apiErrors"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/response"
	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

const (
	defaultForecastPeriods = 12

	forecastFallbackNote = "Using fallback simple forecast"
	clusterFallbackNote  = "Using fallback cluster data"
)

// GetForecast nunca falha: sem o serviço de ML devolve a previsão local com a nota de fallback
func GetForecast(service forecasting.Forecaster, maxPeriods int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		periods := utils.ParsePositiveInt(query, "periods", defaultForecastPeriods)
		if periods < 1 {
			periods = defaultForecastPeriods
		}
		if periods > maxPeriods {
			periods = maxPeriods
		}

		modelType := query.Get("model_type")
		if modelType == "" {
			modelType = domain.DefaultModelType
		}

		result := service.Forecast(r.Context(), periods, modelType)

		var opts []response.Option
		if result.Fallback {
			opts = append(opts, response.WithNote(forecastFallbackNote))
		}

		response.OK(w, result.Data(), opts...)
	}
}

func GetClusters(service clustering.Clusterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Clusters(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar clusters de clientes")
			if errors.Is(err, clustering.ErrServiceUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrServiceDown, "ML service temporarily unavailable")
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to fetch clusters")
			return
		}

		writeClusterReport(w, report)
	}
}

// GetFallbackClusters calcula os segmentos direto do warehouse, sem consultar o serviço de ML
func GetFallbackClusters(service clustering.Clusterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.FallbackClusters(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar clusters de fallback")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch fallback clusters")
			return
		}

		writeClusterReport(w, report)
	}
}

func writeClusterReport(w http.ResponseWriter, report *domain.ClusterReport) {
	var opts []response.Option
	if report.IsFallback() {
		opts = append(opts, response.WithNote(clusterFallbackNote))
	}

	response.OK(w, report, opts...)
}
