package middleware

import (
	"net/http"
	"time"

	"github.com/retail-analytics/dashboard-api/pkg/metrics"
)

// Metrics registra contagem e duração usando o template da rota como rótulo,
// evitando um rótulo por ID
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r)

			metrics.RecordHTTPRequest(r.Method, route, rec.statusCode, time.Since(start).Seconds())
		})
	}
}
