// Package metrics concentra os coletores Prometheus da API
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tipos de fallback registrados em FallbackActivations
const (
	FallbackForecast       = "forecast"
	FallbackForecastStub   = "forecast_stub"
	FallbackClusters       = "clusters"
	FallbackClustersFailed = "clusters_failed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_api_http_requests_total",
			Help: "Total de requisições HTTP atendidas",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "retail_api_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MLServiceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_api_ml_service_requests_total",
			Help: "Chamadas ao serviço de ML por operação e resultado",
		},
		[]string{"operation", "result"}, // success, failure, rejected
	)

	FallbackActivations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_api_fallback_activations_total",
			Help: "Quantidade de vezes que um fallback local foi usado",
		},
		[]string{"kind"},
	)

	ClusterEntriesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "retail_api_cluster_entries_skipped_total",
			Help: "Entradas de cluster malformadas descartadas na normalização",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "retail_api_circuit_breaker_state",
			Help: "Estado do circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_api_circuit_breaker_transitions_total",
			Help: "Transições de estado do circuit breaker",
		},
		[]string{"name", "from", "to"},
	)

	MLServiceAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "retail_api_ml_service_available",
			Help: "Resultado da última verificação de disponibilidade do serviço de ML (1=disponível)",
		},
	)
)

// RecordHTTPRequest registra contagem e duração de uma requisição
func RecordHTTPRequest(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RecordFallback(kind string) {
	FallbackActivations.WithLabelValues(kind).Inc()
}

func RecordMLRequest(operation, result string) {
	MLServiceRequests.WithLabelValues(operation, result).Inc()
}

func SetMLServiceAvailable(available bool) {
	if available {
		MLServiceAvailable.Set(1)
		return
	}
	MLServiceAvailable.Set(0)
}

// Handler expõe o registry padrão no formato de exposição do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
