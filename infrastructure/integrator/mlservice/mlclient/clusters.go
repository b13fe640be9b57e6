package mlclient

import (
	"context"
	"encoding/json"
)

func (c *MLClient) GetClusters(ctx context.Context) (json.RawMessage, error) {
	endpoint := c.endpoint("/clusters", nil)

	return c.execute("clusters", func() ([]byte, error) {
		return c.get(ctx, endpoint)
	})
}
