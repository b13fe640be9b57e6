package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/retail-analytics/dashboard-api/infrastructure/repository"
	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Analyzer interface {
	// KPIs executa as cinco agregações em paralelo; qualquer falha derruba o resultado inteiro
	KPIs(ctx context.Context) (*domain.KPIs, error)
	SalesTrends(ctx context.Context, period domain.TrendPeriod) ([]domain.SalesTrend, error)
	// TopCustomers filtra pelo segmento quando cluster não é nil
	TopCustomers(ctx context.Context, limit int, cluster *domain.ClusterID) ([]domain.TopCustomer, error)
	DailySales(ctx context.Context) ([]domain.DailySales, error)
}

type Service struct {
	analyticsRepository repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) Analyzer {
	return &Service{
		analyticsRepository: analyticsRepo,
	}
}

func (s *Service) KPIs(ctx context.Context) (*domain.KPIs, error) {
	var kpis domain.KPIs

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.analyticsRepository.TotalRevenue(gctx)
		if err != nil {
			return fmt.Errorf("receita total: %w", err)
		}
		kpis.TotalRevenue = total
		return nil
	})

	g.Go(func() error {
		total, err := s.analyticsRepository.TotalCustomers(gctx)
		if err != nil {
			return fmt.Errorf("total de clientes: %w", err)
		}
		kpis.TotalCustomers = total
		return nil
	})

	g.Go(func() error {
		total, err := s.analyticsRepository.TotalTransactions(gctx)
		if err != nil {
			return fmt.Errorf("total de transações: %w", err)
		}
		kpis.TotalTransactions = total
		return nil
	})

	g.Go(func() error {
		avg, err := s.analyticsRepository.AverageOrderValue(gctx)
		if err != nil {
			return fmt.Errorf("ticket médio: %w", err)
		}
		kpis.AverageOrderValue = utils.RoundWithTwoDecimalPlace(avg)
		return nil
	})

	g.Go(func() error {
		total, err := s.analyticsRepository.TotalProducts(gctx)
		if err != nil {
			return fmt.Errorf("total de produtos: %w", err)
		}
		kpis.TotalProducts = total
		return nil
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao calcular KPIs")
		return nil, err
	}

	return &kpis, nil
}

func (s *Service) SalesTrends(ctx context.Context, period domain.TrendPeriod) ([]domain.SalesTrend, error) {
	return s.analyticsRepository.SalesTrends(ctx, period)
}

func (s *Service) TopCustomers(ctx context.Context, limit int, cluster *domain.ClusterID) ([]domain.TopCustomer, error) {
	if cluster != nil {
		return s.analyticsRepository.TopCustomersByCluster(ctx, *cluster, limit)
	}
	return s.analyticsRepository.TopCustomers(ctx, limit)
}

func (s *Service) DailySales(ctx context.Context) ([]domain.DailySales, error) {
	return s.analyticsRepository.DailySales(ctx)
}
