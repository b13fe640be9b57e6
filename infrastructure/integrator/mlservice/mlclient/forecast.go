package mlclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

func (c *MLClient) GetForecast(ctx context.Context, periods int, modelType string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("periods", strconv.Itoa(periods))
	query.Set("model_type", modelType)

	endpoint := c.endpoint("/forecast", query)

	return c.execute("forecast", func() ([]byte, error) {
		return c.get(ctx, endpoint)
	})
}
