package site

import (
	"context"
	"regexp"
	"strings"

	"github.com/vfg2006/order-reports-api/infrastructure/repository"
	"github.com/vfg2006/order-reports-api/internal/domain"
)

// Identificadores canônicos de site são hexadecimais de 24 caracteres; tudo
// que não tiver esse formato é tratado como slug
var canonicalIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// SiteResolver mapeia um identificador externo (slug ou id canônico) para o
// registro de site que escopa todas as consultas
type SiteResolver interface {
	Resolve(ctx context.Context, identifier string) (*domain.Site, error)
}

type Service struct {
	siteRepository repository.SiteRepository
}

func NewService(siteRepository repository.SiteRepository) SiteResolver {
	return &Service{
		siteRepository: siteRepository,
	}
}

// Resolve tenta a busca por id canônico apenas quando o identificador tem o
// formato de id; em caso de falha, ou para qualquer outro formato, busca por
// slug. Retorna ErrSiteNotFound quando nenhum site corresponde
func (s *Service) Resolve(ctx context.Context, identifier string) (*domain.Site, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrIdentifierRequired
	}

	if canonicalIDPattern.MatchString(identifier) {
		found, err := s.siteRepository.GetByID(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	found, err := s.siteRepository.GetBySlug(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrSiteNotFound
	}

	return found, nil
}
