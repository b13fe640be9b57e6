// Package mlservice integra a API com o serviço externo de previsão e clusterização
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice/mlclient"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// ErrUpstreamUnavailable cobre qualquer falha do serviço de ML: rede, status,
// timeout, circuito aberto ou um corpo {"error": ...}
var ErrUpstreamUnavailable = errors.New("ml service unavailable")

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type MLIntegrator interface {
	GetForecast(ctx context.Context, periods int, modelType string) (json.RawMessage, error)
	GetClusters(ctx context.Context) (*domain.ExternalClusterPayload, error)
	CheckConnection(ctx context.Context) error
}

type MLService struct {
	Client mlclient.Client
}

func New(client mlclient.Client) MLIntegrator {
	return &MLService{
		Client: client,
	}
}

func (s *MLService) GetForecast(ctx context.Context, periods int, modelType string) (json.RawMessage, error) {
	body, err := s.Client.GetForecast(ctx, periods, modelType)
	if err != nil {
		return nil, upstreamError(err)
	}

	if msg, ok := errorBody(body); ok {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, msg)
	}

	return body, nil
}

func (s *MLService) GetClusters(ctx context.Context) (*domain.ExternalClusterPayload, error) {
	body, err := s.Client.GetClusters(ctx)
	if err != nil {
		return nil, upstreamError(err)
	}

	return DecodeClusterPayload(body)
}

func (s *MLService) CheckConnection(ctx context.Context) error {
	if err := s.Client.Ping(ctx); err != nil {
		return upstreamError(err)
	}
	return nil
}

// DecodeClusterPayload resolve, uma única vez, os formatos aceitos da resposta
// de clusters: {"clusters":[...]}, {"data":{"clusters":[...]}} ou um array puro.
// As entradas individuais não são validadas aqui.
func DecodeClusterPayload(body []byte) (*domain.ExternalClusterPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: resposta vazia", ErrUpstreamUnavailable)
	}

	switch trimmed[0] {
	case '[':
		var entries []json.RawMessage
		if err := jsonAPI.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return &domain.ExternalClusterPayload{Entries: entries}, nil

	case '{':
		if msg, ok := errorBody(trimmed); ok {
			return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, msg)
		}

		if entries, ok := clustersField(trimmed); ok {
			return &domain.ExternalClusterPayload{Entries: entries}, nil
		}

		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := jsonAPI.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
			if entries, ok := clustersField(envelope.Data); ok {
				return &domain.ExternalClusterPayload{Entries: entries}, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: formato de clusters não reconhecido", ErrUpstreamUnavailable)
}

func clustersField(body []byte) ([]json.RawMessage, bool) {
	var object map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(body, &object); err != nil {
		return nil, false
	}

	raw, ok := object["clusters"]
	if !ok {
		return nil, false
	}

	var entries []json.RawMessage
	if err := jsonAPI.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}

	return entries, true
}

// errorBody detecta o corpo {"error": "..."} que o serviço devolve com status 200
func errorBody(body []byte) (string, bool) {
	var object map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(body, &object); err != nil {
		return "", false
	}

	raw, ok := object["error"]
	if !ok {
		return "", false
	}

	var msg string
	if err := jsonAPI.Unmarshal(raw, &msg); err != nil {
		msg = string(raw)
	}

	return msg, true
}

func upstreamError(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
