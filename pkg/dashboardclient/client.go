// Package dashboardclient é um cliente tipado para a API do dashboard.
// Cada Client carrega sua própria configuração; não há estado global.
package dashboardclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/retail-analytics/dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// APIError é devolvido para status não 2xx ou envelope com success=false
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard api: status %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success    bool                `json:"success"`
	Data       jsoniter.RawMessage `json:"data"`
	Error      string              `json:"error"`
	Note       string              `json:"note"`
	Period     string              `json:"period"`
	Pagination *domain.Pagination  `json:"pagination"`
}

func New(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("URL base inválida: %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		message := env.Error
		if message == "" {
			message = resp.Status
		}
		return nil, &APIError{Status: resp.StatusCode, Message: message}
	}

	return &env, nil
}

func decodeData[T any](env *envelope) (T, error) {
	var data T
	if len(env.Data) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return data, fmt.Errorf("erro ao decodificar data: %w", err)
	}
	return data, nil
}

func setInt(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}
