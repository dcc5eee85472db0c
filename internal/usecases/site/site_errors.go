package site

import "errors"

// Erros específicos para o contexto de sites
var (
	ErrIdentifierRequired = errors.New("site identifier is required")
	ErrSiteNotFound       = errors.New("site not found")
)
