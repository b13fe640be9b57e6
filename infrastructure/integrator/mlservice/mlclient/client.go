package mlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/pkg/metrics"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

const breakerName = "ml-service"

type Client interface {
	GetForecast(ctx context.Context, periods int, modelType string) (json.RawMessage, error)
	GetClusters(ctx context.Context) (json.RawMessage, error)
	Ping(ctx context.Context) error
}

type MLClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// StatusError indica uma resposta fora da faixa 2xx
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "requisição falhou com status: " + e.Status
}

func NewClient(cfg config.MLService) (Client, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Requisição cancelada pelo cliente não conta como falha do serviço
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker do serviço de ML mudou de estado")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &MLClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		breaker: breaker,
	}, nil
}

// execute passa a chamada pelo circuit breaker. Com o circuito aberto a chamada
// nem chega a sair e o erro volta imediatamente.
func (c *MLClient) execute(operation string, fn func() ([]byte, error)) ([]byte, error) {
	body, err := c.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordMLRequest(operation, "rejected")
		} else {
			metrics.RecordMLRequest(operation, "failure")
		}
		return nil, err
	}

	metrics.RecordMLRequest(operation, "success")
	return body, nil
}

func (c *MLClient) endpoint(p string, query url.Values) string {
	endpoint := c.baseURL.JoinPath(p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func (c *MLClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if !json.Valid(body) {
		return nil, errors.New("resposta do serviço de ML não é um JSON válido")
	}

	return body, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
