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

const (
	defaultProductsLimit      = 50
	defaultTopCategoriesLimit = 10

	// O httprouter não aceita um segmento estático ao lado de :id,
	// então /api/products/top-categories chega pelo handler de produto
	topCategoriesSegment = "top-categories"
)

func ListProducts(service catalog.Cataloger, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := utils.ParsePagination(r.URL.Query(), defaultProductsLimit, maxLimit)

		result, err := service.ListProducts(r.Context(), page, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch products")
			return
		}

		response.OK(w, result.Rows, response.WithPagination(result.Pagination))
	}
}

// GetProduct devolve o produto com suas estatísticas de venda, ou o ranking
// de categorias quando o segmento é top-categories
func GetProduct(service catalog.Cataloger, topListMaxLimit int) http.HandlerFunc {
	topCategories := TopCategories(service, topListMaxLimit)

	return func(w http.ResponseWriter, r *http.Request) {
		param := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if param == topCategoriesSegment {
			topCategories(w, r)
			return
		}

		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found")
			return
		}

		product, err := service.GetProduct(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found")
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("product_id", id).Error("Erro ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch product")
			return
		}

		response.OK(w, product)
	}
}

func TopCategories(service catalog.Cataloger, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := utils.ParseLimit(r.URL.Query(), defaultTopCategoriesLimit, maxLimit)

		categories, err := service.TopCategories(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking de categorias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch top categories")
			return
		}

		response.OK(w, categories)
	}
}
