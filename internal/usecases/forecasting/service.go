package forecasting

import (
	"context"


	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice"
	"github.com/retail-analytics/dashboard-api/infrastructure/repository"
	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/metrics"
	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	growthPerPeriod = 0.02
	confidenceRatio = 0.10

	// Previsão estática usada quando não há histórico algum
	StubForecast = 14000
	StubBand     = 500
)

type Forecaster interface {
	// Forecast nunca falha: sem o serviço de ML a previsão é calculada localmente
	Forecast(ctx context.Context, periods int, modelType string) *domain.ForecastResult
}

type Service struct {
	mlService         mlservice.MLIntegrator
	historyRepository repository.SalesHistoryRepository
	historyMonths     int
}

func NewService(cfg *config.Config, mlService mlservice.MLIntegrator, historyRepo repository.SalesHistoryRepository) Forecaster {
	return &Service{
		mlService:         mlService,
		historyRepository: historyRepo,
		historyMonths:     cfg.Forecast.HistoryMonths,
	}
}

func (s *Service) Forecast(ctx context.Context, periods int, modelType string) *domain.ForecastResult {
	body, err := s.mlService.GetForecast(ctx, periods, modelType)
	if err == nil {
		return &domain.ForecastResult{External: body}
	}

	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"periods":    periods,
		"model_type": modelType,
	}).Warn("Serviço de ML indisponível, usando previsão de fallback")

	history, err := s.historyRepository.RecentMonthlySales(ctx, s.historyMonths)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar histórico de vendas, usando previsão estática")
		history = nil
	}

	if len(history) == 0 {
		metrics.RecordFallback(metrics.FallbackForecastStub)
	} else {
		metrics.RecordFallback(metrics.FallbackForecast)
	}

	return &domain.ForecastResult{
		Points:   BuildFallbackForecast(history, periods),
		Fallback: true,
	}
}

// BuildFallbackForecast projeta a média do histórico com crescimento de 2% por
// período e banda de ±10%. Sem histórico devolve a previsão estática.
func BuildFallbackForecast(history []float64, periods int) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, 0, max(periods, 0))

	if len(history) == 0 {
		for i := 1; i <= periods; i++ {
			points = append(points, domain.ForecastPoint{
				Period:          i,
				Forecast:        StubForecast,
				ConfidenceLower: StubForecast - StubBand,
				ConfidenceUpper: StubForecast + StubBand,
			})
		}
		return points
	}

	var sum float64
	for _, v := range history {
		sum += v
	}
	avg := sum / float64(len(history))

	for i := 1; i <= periods; i++ {
		base := avg * (1 + float64(i)*growthPerPeriod)
		width := base * confidenceRatio

		points = append(points, domain.ForecastPoint{
			Period:          i,
			Forecast:        utils.RoundHalfUp(base),
			ConfidenceLower: utils.RoundHalfUp(base - width),
			ConfidenceUpper: utils.RoundHalfUp(base + width),
		})
	}

	return points
}
