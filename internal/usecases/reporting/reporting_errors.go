package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação (HTTP 400)
	ErrSiteRequired    = errors.New("site is required")
	ErrInvalidMode     = errors.New("mode must be one of: week, month, custom")
	ErrMissingRange    = errors.New("start and end are required for custom mode")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidRange    = errors.New("end date must not be before start date")
	ErrUnknownTimezone = errors.New("unknown reporting timezone")

	// Erro de capacidade do backend (HTTP 500, mensagem explícita), disparado
	// quando o agrupamento por dia local não pode ser avaliado; nunca
	// degradamos silenciosamente para agrupamento por dia UTC
	ErrTimezoneCapability = errors.New("store cannot evaluate timezone-aware day grouping")

	// Erros de banco de dados (HTTP 500, mensagem genérica)
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SiteID  string // ID do site envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSiteRequired) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrMissingRange) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownTimezone)
}
