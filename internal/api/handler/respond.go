package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/order-reports-api/internal/usecases/site"
	"github.com/vfg2006/order-reports-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type dashboardResponse struct {
	Ok bool `json:"ok"`
	*domain.DashboardReport
}

type orderListResponse struct {
	Ok bool `json:"ok"`
	*domain.OrderListReport
}

type errorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("reports: failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Ok: false, Error: message})
}

// statusForError traduz a taxonomia de erros de relatório para HTTP:
// validação → 400, site desconhecido → 404, capacidade de fuso → 500 com
// mensagem explícita, qualquer outra falha → 500 genérico (o detalhe completo
// fica apenas nos logs, nunca ecoado ao cliente)
func statusForError(err error) (int, string) {
	switch {
	case reporting.IsValidationError(err) || errors.Is(err, site.ErrIdentifierRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, site.ErrSiteNotFound):
		return http.StatusNotFound, site.ErrSiteNotFound.Error()
	case errors.Is(err, reporting.ErrTimezoneCapability):
		return http.StatusInternalServerError, reporting.ErrTimezoneCapability.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
