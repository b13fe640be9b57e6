package catalog

import (
	"context"
	"fmt"

	"github.com/retail-analytics/dashboard-api/infrastructure/repository"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Cataloger expõe as dimensões do warehouse: clientes, produtos e datas
type Cataloger interface {
	ListCustomers(ctx context.Context, page, limit int) (*domain.PageResult[domain.Customer], error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)

	ListProducts(ctx context.Context, page, limit int) (*domain.PageResult[domain.Product], error)
	GetProduct(ctx context.Context, id int64) (*domain.ProductDetail, error)
	TopCategories(ctx context.Context, limit int) ([]domain.CategorySummary, error)

	ListDates(ctx context.Context) ([]domain.DateDimension, error)
	DatesByYear(ctx context.Context, year int) ([]domain.DateDimension, error)
	DatesByMonth(ctx context.Context, year, month int) ([]domain.DateDimension, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	productRepository  repository.ProductRepository
	dateRepository     repository.DateRepository
}

func NewService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	dateRepo repository.DateRepository,
) Cataloger {
	return &Service{
		customerRepository: customerRepo,
		productRepository:  productRepo,
		dateRepository:     dateRepo,
	}
}

func (s *Service) ListCustomers(ctx context.Context, page, limit int) (*domain.PageResult[domain.Customer], error) {
	return s.customerRepository.List(ctx, page, limit)
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}

	return customer, nil
}

func (s *Service) ListProducts(ctx context.Context, page, limit int) (*domain.PageResult[domain.Product], error) {
	return s.productRepository.List(ctx, page, limit)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}

	return product, nil
}

func (s *Service) TopCategories(ctx context.Context, limit int) ([]domain.CategorySummary, error) {
	return s.productRepository.TopCategories(ctx, limit)
}

func (s *Service) ListDates(ctx context.Context) ([]domain.DateDimension, error) {
	return s.dateRepository.ListAll(ctx)
}

func (s *Service) DatesByYear(ctx context.Context, year int) ([]domain.DateDimension, error) {
	return s.dateRepository.ListByYear(ctx, year)
}

func (s *Service) DatesByMonth(ctx context.Context, year, month int) ([]domain.DateDimension, error) {
	return s.dateRepository.ListByMonth(ctx, year, month)
}
