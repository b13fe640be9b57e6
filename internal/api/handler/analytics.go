package handler

import (
	"net/http"
	"strconv"


	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/analytics"
	"github.com/retail-analytics/dashboard-api/pkg/apiErrors"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/response"
	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

const defaultTopCustomersLimit = 20

func GetKPIs(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar KPIs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch KPIs")
			return
		}

		response.OK(w, kpis)
	}
}

// GetSalesTrends agrupa a receita por mês, ou por trimestre com period=quarterly
func GetSalesTrends(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := domain.ParseTrendPeriod(r.URL.Query().Get("period"))

		trends, err := service.SalesTrends(r.Context(), period)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("period", period).Error("Erro ao buscar tendências de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch sales trends")
			return
		}

		response.OK(w, trends, response.WithPeriod(string(period)))
	}
}

func GetTopCustomers(service analytics.Analyzer, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		limit := utils.ParseLimit(query, defaultTopCustomersLimit, maxLimit)
		cluster := parseCluster(query.Get("cluster"))

		customers, err := service.TopCustomers(r.Context(), limit, cluster)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar top clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch top customers")
			return
		}

		response.OK(w, customers)
	}
}

func GetDailySales(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.DailySales(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar vendas diárias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch daily sales data")
			return
		}

		response.OK(w, sales)
	}
}

// parseCluster devolve nil para ausente, "all" ou valor não numérico
func parseCluster(value string) *domain.ClusterID {
	if value == "" || value == "all" {
		return nil
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	cluster := domain.ClusterID(id)
	return &cluster
}
