package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog"
	"github.com/retail-analytics/dashboard-api/pkg/apiErrors"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/response"
	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

const defaultCustomersLimit = 10

// ListCustomers devolve uma página de clientes com os metadados de paginação
func ListCustomers(service catalog.Cataloger, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := utils.ParsePagination(r.URL.Query(), defaultCustomersLimit, maxLimit)

		result, err := service.ListCustomers(r.Context(), page, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch customers")
			return
		}

		response.OK(w, result.Rows, response.WithPagination(result.Pagination))
	}
}

func GetCustomer(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Customer not found")
			return
		}

		customer, err := service.GetCustomer(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Customer not found")
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("customer_id", id).Error("Erro ao buscar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch customer")
			return
		}

		response.OK(w, customer)
	}
}
