package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/retail-analytics/dashboard-api/internal/usecases/catalog"
	"github.com/retail-analytics/dashboard-api/pkg/apiErrors"
	"github.com/retail-analytics/dashboard-api/pkg/log"
	"github.com/retail-analytics/dashboard-api/pkg/response"
)

func ListDates(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := service.ListDates(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar datas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch dates")
			return
		}

		response.OK(w, dates)
	}
}

func DatesByYear(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid year")
			return
		}

		dates, err := service.DatesByYear(r.Context(), year)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("year", year).Error("Erro ao buscar datas do ano")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch dates by year")
			return
		}

		response.OK(w, dates)
	}
}

func DatesByMonth(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid year")
			return
		}

		month, err := strconv.Atoi(params.ByName("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid month")
			return
		}

		dates, err := service.DatesByMonth(r.Context(), year, month)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
				"year":  year,
				"month": month,
			}).Error("Erro ao buscar datas do mês")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch dates by month")
			return
		}

		response.OK(w, dates)
	}
}
