package handler

import (
	"net/http"
	"regexp"

	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/order-reports-api/pkg/log"
)

var dateParamPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseReportParams extrai e valida os parâmetros comuns aos endpoints de
// relatório: site obrigatório, mode um dos três literais, start/end
// obrigatórios e bem formados no modo custom
func parseReportParams(r *http.Request) (reporting.ReportParams, error) {
	query := r.URL.Query()

	params := reporting.ReportParams{
		Site: query.Get("site"),
		Mode: domain.Mode(query.Get("mode")),
	}

	if params.Site == "" {
		return params, reporting.ErrSiteRequired
	}

	if !params.Mode.Valid() {
		return params, reporting.NewReportError(reporting.ErrInvalidMode, "INVALID_MODE", query.Get("mode"))
	}

	if params.Mode == domain.ModeCustom {
		start := query.Get("start")
		end := query.Get("end")

		if start == "" || end == "" {
			return params, reporting.ErrMissingRange
		}

		if !dateParamPattern.MatchString(start) {
			return params, reporting.NewReportError(reporting.ErrInvalidDate, "INVALID_DATE", start)
		}

		if !dateParamPattern.MatchString(end) {
			return params, reporting.NewReportError(reporting.ErrInvalidDate, "INVALID_DATE", end)
		}

		params.Custom = &domain.CustomRange{
			StartDate: start,
			EndDate:   end,
		}
	}

	return params, nil
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseReportParams(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"site":  r.URL.Query().Get("site"),
				"mode":  r.URL.Query().Get("mode"),
				"error": err.Error(),
			}).Warn("reports: invalid dashboard parameters")

			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"site": params.Site,
			"mode": string(params.Mode),
		}).Info("reports: building dashboard")

		report, err := service.Dashboard(r.Context(), params)
		if err != nil {
			status, message := statusForError(err)

			logger.WithFields(log.Fields{
				"site":        params.Site,
				"mode":        string(params.Mode),
				"status_code": status,
				"error":       err.Error(),
			}).Error("reports: failed to build dashboard")

			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, dashboardResponse{Ok: true, DashboardReport: report})
	})
}
