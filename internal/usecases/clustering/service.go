package clustering

import (
	"context"
	"errors"


	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice"
	"github.com/retail-analytics/dashboard-api/infrastructure/repository"
	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// ErrServiceUnavailable indica que nem o serviço de ML nem o fallback no banco responderam
var ErrServiceUnavailable = errors.New("ML service temporarily unavailable")

type Clusterer interface {
	// Clusters tenta o serviço de ML uma vez e cai para o cálculo no warehouse
	Clusters(ctx context.Context) (*domain.ClusterReport, error)
	// FallbackClusters calcula os segmentos sempre a partir do warehouse
	FallbackClusters(ctx context.Context) (*domain.ClusterReport, error)
}

type Service struct {
	mlService         mlservice.MLIntegrator
	clusterRepository repository.ClusterRepository
}

func NewService(mlService mlservice.MLIntegrator, clusterRepo repository.ClusterRepository) Clusterer {
	return &Service{
		mlService:         mlService,
		clusterRepository: clusterRepo,
	}
}

func (s *Service) Clusters(ctx context.Context) (*domain.ClusterReport, error) {
	payload, err := s.mlService.GetClusters(ctx)
	if err == nil {
		return s.report(ctx, *payload), nil
	}

	log.ForContext(ctx).WithError(err).Warn("Serviço de ML indisponível, calculando clusters no banco")

	report, fallbackErr := s.FallbackClusters(ctx)
	if fallbackErr != nil {
		log.ForContext(ctx).WithError(fallbackErr).Error("Fallback de clusters também falhou")
		metrics.RecordFallback(metrics.FallbackClustersFailed)
		return nil, errors.Join(ErrServiceUnavailable, err, fallbackErr)
	}

	metrics.RecordFallback(metrics.FallbackClusters)
	return report, nil
}

func (s *Service) FallbackClusters(ctx context.Context) (*domain.ClusterReport, error) {
	rows, err := s.clusterRepository.CustomerSpend(ctx)
	if err != nil {
		return nil, err
	}

	return s.report(ctx, domain.FallbackClusterPayload{Rows: rows}), nil
}

func (s *Service) report(ctx context.Context, payload domain.ClusterPayload) *domain.ClusterReport {
	set := NormalizeClusters(payload)

	if set.Skipped > 0 {
		log.ForContext(ctx).WithField("skipped", set.Skipped).Warn("Entradas de cluster malformadas foram descartadas")
		metrics.ClusterEntriesSkipped.Add(float64(set.Skipped))
	}

	return &domain.ClusterReport{
		Source:   set.Source,
		Clusters: set.Members,
		Summary:  Summarize(set),
	}
}
