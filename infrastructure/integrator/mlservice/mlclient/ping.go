package mlclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// maxBodySize limita o corpo lido do serviço de ML (32 MiB)
const maxBodySize = 32 << 20

// Ping consulta a rota raiz do serviço. Não passa pelo circuit breaker para que a
// verificação periódica reflita o estado real do serviço.
func (c *MLClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/", nil), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "serviço de ML inacessível")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
