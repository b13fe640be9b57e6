package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/scheduler"
	"github.com/retail-analytics/dashboard-api/pkg/apiErrors"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/response"
)

// HealthcheckHandler responde sempre 200; o estado do serviço de ML é só informativo
func HealthcheckHandler(probe scheduler.StatusReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, domain.Health{
			Status:    "OK",
			Message:   "Retail Analytics API is running",
			Timestamp: time.Now().UTC(),
			MLService: probe.GetStatus(),
		})
	})
}

// CheckMLService executa a sonda do serviço de ML imediatamente e devolve o novo estado
func CheckMLService(probe scheduler.StatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Verificação manual do serviço de ML solicitada")

		response.OK(w, probe.TriggerManualCheck(r.Context()))
	}
}

// NotFoundHandler responde rotas e métodos não registrados
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, fmt.Sprintf("Route %s %s not found", r.Method, r.URL.RequestURI()))
	})
}
