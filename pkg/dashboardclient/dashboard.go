package dashboardclient

import (
	"context"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/retail-analytics/dashboard-api/internal/domain"
)

// ForecastResponse guarda a previsão bruta; com Fallback os pontos podem ser lidos por Points
type ForecastResponse struct {
	Data     jsoniter.RawMessage
	Note     string
	Fallback bool
}

// Points decodifica data como a lista de pontos usada pela previsão de fallback
func (f *ForecastResponse) Points() ([]domain.ForecastPoint, error) {
	var points []domain.ForecastPoint
	if err := json.Unmarshal(f.Data, &points); err != nil {
		return nil, err
	}
	return points, nil
}

type ClusterResponse struct {
	Report   domain.ClusterReport
	Note     string
	Fallback bool
}

func (c *Client) KPIs(ctx context.Context) (*domain.KPIs, error) {
	env, err := c.get(ctx, "/api/analytics/kpis", url.Values{})
	if err != nil {
		return nil, err
	}

	kpis, err := decodeData[domain.KPIs](env)
	if err != nil {
		return nil, err
	}
	return &kpis, nil
}

func (c *Client) Trends(ctx context.Context, period domain.TrendPeriod) ([]domain.SalesTrend, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", string(period))
	}

	env, err := c.get(ctx, "/api/analytics/trends", query)
	if err != nil {
		return nil, err
	}
	return decodeData[[]domain.SalesTrend](env)
}

// TopCustomers devolve o ranking geral, ou de um único segmento quando cluster não é nil
func (c *Client) TopCustomers(ctx context.Context, limit int, cluster *domain.ClusterID) ([]domain.TopCustomer, error) {
	query := url.Values{}
	setInt(query, "limit", limit)
	if cluster != nil {
		query.Set("cluster", strconv.Itoa(int(*cluster)))
	}

	env, err := c.get(ctx, "/api/analytics/top-customers", query)
	if err != nil {
		return nil, err
	}
	return decodeData[[]domain.TopCustomer](env)
}

func (c *Client) Forecast(ctx context.Context, periods int, modelType string) (*ForecastResponse, error) {
	query := url.Values{}
	setInt(query, "periods", periods)
	if modelType != "" {
		query.Set("model_type", modelType)
	}

	env, err := c.get(ctx, "/api/ml/forecast", query)
	if err != nil {
		return nil, err
	}

	return &ForecastResponse{
		Data:     env.Data,
		Note:     env.Note,
		Fallback: env.Note != "",
	}, nil
}

func (c *Client) Clusters(ctx context.Context) (*ClusterResponse, error) {
	env, err := c.get(ctx, "/api/ml/clusters", url.Values{})
	if err != nil {
		return nil, err
	}

	report, err := decodeData[domain.ClusterReport](env)
	if err != nil {
		return nil, err
	}

	return &ClusterResponse{
		Report:   report,
		Note:     env.Note,
		Fallback: env.Note != "",
	}, nil
}

func (c *Client) Customers(ctx context.Context, page, limit int) (*domain.PageResult[domain.Customer], error) {
	query := url.Values{}
	setInt(query, "page", page)
	setInt(query, "limit", limit)

	env, err := c.get(ctx, "/api/customers", query)
	if err != nil {
		return nil, err
	}

	rows, err := decodeData[[]domain.Customer](env)
	if err != nil {
		return nil, err
	}

	result := &domain.PageResult[domain.Customer]{Rows: rows}
	if env.Pagination != nil {
		result.Pagination = *env.Pagination
	}
	return result, nil
}
