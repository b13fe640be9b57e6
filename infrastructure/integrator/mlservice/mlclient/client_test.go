package mlclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-analytics/dashboard-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.MLService{URL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	return client
}

func TestMLClient_GetForecast(t *testing.T) {
	t.Run("Envia periods e model_type e devolve o corpo bruto", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/forecast", r.URL.Path)
			assert.Equal(t, "3", r.URL.Query().Get("periods"))
			assert.Equal(t, "prophet", r.URL.Query().Get("model_type"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"forecast":[{"period":1,"forecast":100}]}`))
		})

		body, err := client.GetForecast(context.Background(), 3, "prophet")
		require.NoError(t, err)
		assert.JSONEq(t, `{"forecast":[{"period":1,"forecast":100}]}`, string(body))
	})

	t.Run("Status fora de 2xx vira StatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetForecast(context.Background(), 12, "simple")

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	})

	t.Run("Corpo que não é JSON é falha", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>oops</html>"))
		})

		_, err := client.GetForecast(context.Background(), 12, "simple")
		assert.Error(t, err)
	})
}

func TestMLClient_CircuitBreaker(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := client.GetClusters(context.Background())
		require.Error(t, err)
	}

	_, err := client.GetClusters(context.Background())
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(5), hits.Load(), "com o circuito aberto a requisição não deve sair")
}

func TestMLClient_CircuitBreakerIgnoraCancelamento(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"clusters":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 6; i++ {
		_, err := client.GetClusters(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, errors.Is(err, gobreaker.ErrOpenState))
	}

	body, err := client.GetClusters(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"clusters":[]}`, string(body))
	assert.Equal(t, int32(1), hits.Load())
}

func TestMLClient_Ping(t *testing.T) {
	t.Run("Serviço respondendo", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/", r.URL.Path)
			_, _ = w.Write([]byte(`{"message":"RFM ML Service is running"}`))
		})

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("Serviço fora do ar", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client, err := NewClient(config.MLService{URL: server.URL, Timeout: time.Second})
		require.NoError(t, err)

		assert.Error(t, client.Ping(context.Background()))
	})
}
