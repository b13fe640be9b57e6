package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/retail-analytics/dashboard-api/pkg/response"
)

// RateLimit limita requisições por IP em janelas de um minuto. Zero desabilita.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.Fail(w, http.StatusTooManyRequests, "Too many requests")
		}),
	)
}
