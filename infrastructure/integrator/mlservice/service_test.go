package mlservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice/mocks"
)

func TestDecodeClusterPayload(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantEntries int
		wantErr     bool
	}{
		{
			name:        "Objeto com clusters no topo",
			body:        `{"clusters":[{"customer_id":1,"cluster":0},{"customer_id":2,"cluster":1}],"k":4}`,
			wantEntries: 2,
		},
		{
			name:        "Clusters aninhados em data",
			body:        `{"data":{"clusters":[{"customer_id":1,"cluster":2}]}}`,
			wantEntries: 1,
		},
		{
			name:        "Array puro",
			body:        ` [{"customer_id":1,"cluster":3}, "lixo"]`,
			wantEntries: 2,
		},
		{
			name:        "Lista vazia é válida",
			body:        `{"clusters":[]}`,
			wantEntries: 0,
		},
		{
			name:    "Corpo de erro com status 200",
			body:    `{"error":"database connection failed"}`,
			wantErr: true,
		},
		{
			name:    "Clusters que não são array",
			body:    `{"clusters":{"0":[]}}`,
			wantErr: true,
		},
		{
			name:    "Escalar",
			body:    `42`,
			wantErr: true,
		},
		{
			name:    "Vazio",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := DecodeClusterPayload([]byte(tt.body))

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
				assert.Nil(t, payload)
				return
			}

			require.NoError(t, err)
			assert.Len(t, payload.Entries, tt.wantEntries)
		})
	}
}

func TestMLService_GetForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	t.Run("Resposta válida é repassada", func(t *testing.T) {
		client.EXPECT().
			GetForecast(gomock.Any(), 6, "simple").
			Return(json.RawMessage(`{"forecast":[1,2,3]}`), nil)

		body, err := service.GetForecast(context.Background(), 6, "simple")
		require.NoError(t, err)
		assert.JSONEq(t, `{"forecast":[1,2,3]}`, string(body))
	})

	t.Run("Erro de rede vira ErrUpstreamUnavailable", func(t *testing.T) {
		client.EXPECT().
			GetForecast(gomock.Any(), 6, "simple").
			Return(nil, errors.New("connection refused"))

		_, err := service.GetForecast(context.Background(), 6, "simple")
		assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	})

	t.Run("Corpo com error vira ErrUpstreamUnavailable", func(t *testing.T) {
		client.EXPECT().
			GetForecast(gomock.Any(), 6, "simple").
			Return(json.RawMessage(`{"error":"not enough data"}`), nil)

		_, err := service.GetForecast(context.Background(), 6, "simple")
		assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
		assert.Contains(t, err.Error(), "not enough data")
	})
}

func TestMLService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Ping(gomock.Any()).Return(errors.New("timeout"))

	err := New(client).CheckConnection(context.Background())
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}
