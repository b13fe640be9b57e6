package handler

import (
	"net/http"

	"github.com/retail-analytics/dashboard-api/internal/api/handler/router"
	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/internal/scheduler"
	"github.com/retail-analytics/dashboard-api/internal/usecases/analytics"
	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog"
	"github.com/retail-analytics/dashboard-api/internal/usecases/clustering"
	"github.com/retail-analytics/dashboard-api/internal/usecases/forecasting"
	"github.com/retail-analytics/dashboard-api/pkg/metrics"
)

func Healthcheck(probe scheduler.StatusChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(probe),
		},
		{
			Path:    "/api/health/ml",
			Method:  http.MethodPost,
			Handler: CheckMLService(probe),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Customers(service catalog.Cataloger, cfg config.Pagination) []router.Route {
	return []router.Route{
		{
			Path:    "/api/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service, cfg.CustomersMaxLimit),
		},
		{
			Path:    "/api/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(service),
		},
	}
}

func Products(service catalog.Cataloger, cfg config.Pagination) []router.Route {
	return []router.Route{
		{
			Path:    "/api/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service, cfg.ProductsMaxLimit),
		},
		{
			// Atende também /api/products/top-categories
			Path:    "/api/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service, cfg.TopListMaxLimit),
		},
	}
}

func Dates(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dates",
			Method:  http.MethodGet,
			Handler: ListDates(service),
		},
		{
			Path:    "/api/dates/:year",
			Method:  http.MethodGet,
			Handler: DatesByYear(service),
		},
		{
			Path:    "/api/dates/:year/:month",
			Method:  http.MethodGet,
			Handler: DatesByMonth(service),
		},
	}
}

func Analytics(service analytics.Analyzer, cfg config.Pagination) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/api/analytics/trends",
			Method:  http.MethodGet,
			Handler: GetSalesTrends(service),
		},
		{
			Path:    "/api/analytics/top-customers",
			Method:  http.MethodGet,
			Handler: GetTopCustomers(service, cfg.TopListMaxLimit),
		},
		{
			Path:    "/api/analytics/daily-sales",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
	}
}

func ML(forecaster forecasting.Forecaster, clusterer clustering.Clusterer, cfg config.Forecast) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ml/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(forecaster, cfg.MaxPeriods),
		},
		{
			Path:    "/api/ml/clusters",
			Method:  http.MethodGet,
			Handler: GetClusters(clusterer),
		},
		{
			Path:    "/api/ml/clusters/fallback",
			Method:  http.MethodGet,
			Handler: GetFallbackClusters(clusterer),
		},
	}
}
