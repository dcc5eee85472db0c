package handler

import (
	"net/http"

	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/order-reports-api/pkg/log"
)

func GetOrdersByRange(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseReportParams(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"site":  r.URL.Query().Get("site"),
				"mode":  r.URL.Query().Get("mode"),
				"error": err.Error(),
			}).Warn("reports: invalid range parameters")

			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		report, err := service.OrdersByRange(r.Context(), params)
		if err != nil {
			status, message := statusForError(err)

			logger.WithFields(log.Fields{
				"site":        params.Site,
				"mode":        string(params.Mode),
				"status_code": status,
				"error":       err.Error(),
			}).Error("reports: failed to list orders for range")

			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, orderListResponse{Ok: true, OrderListReport: report})
	})
}

func GetOrdersByDay(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteIdentifier := r.URL.Query().Get("site")
		date := r.URL.Query().Get("date")

		if siteIdentifier == "" {
			respondError(w, http.StatusBadRequest, reporting.ErrSiteRequired.Error())
			return
		}

		if !dateParamPattern.MatchString(date) {
			logger.WithFields(log.Fields{
				"site":  siteIdentifier,
				"date":  date,
				"error": reporting.ErrInvalidDate.Error(),
			}).Warn("reports: invalid date parameter")

			respondError(w, http.StatusBadRequest, reporting.ErrInvalidDate.Error())
			return
		}

		report, err := service.OrdersByDay(r.Context(), siteIdentifier, date)
		if err != nil {
			status, message := statusForError(err)

			logger.WithFields(log.Fields{
				"site":        siteIdentifier,
				"date":        date,
				"status_code": status,
				"error":       err.Error(),
			}).Error("reports: failed to list orders for day")

			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, orderListResponse{Ok: true, OrderListReport: report})
	})
}
