package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/order-reports-api/infrastructure/repository"
	"github.com/vfg2006/order-reports-api/internal/config"
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/site"
)

// Service implementa a interface Reporter
type Service struct {
	cfg             *config.Config
	siteResolver    site.SiteResolver
	orderRepository repository.OrderRepository
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	siteResolver site.SiteResolver,
	orderRepository repository.OrderRepository,
) Reporter {
	return &Service{
		cfg:             cfg,
		siteResolver:    siteResolver,
		orderRepository: orderRepository,
		now:             time.Now,
	}
}

// Dashboard produz a série por dia e os totais da janela. Erros são detectados
// o mais cedo possível e interrompem o fluxo: validar → resolver site →
// planejar janela → agregar. Nada é repetido automaticamente
func (s *Service) Dashboard(ctx context.Context, params ReportParams) (*domain.DashboardReport, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	resolved, err := s.siteResolver.Resolve(ctx, params.Site)
	if err != nil {
		return nil, err
	}

	window, err := PlanWindow(s.now().UTC(), params.Mode, s.cfg.Reporting.Timezone, params.Custom)
	if err != nil {
		return nil, err
	}
	window.SiteID = resolved.ID

	orders, err := s.orderRepository.ListByWindow(ctx, resolved.ID, window.StartUTC, window.EndUTC)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "DB_ERROR", err.Error())
	}

	dayRows, totals, err := aggregateOrders(orders, window)
	if err != nil {
		return nil, err
	}

	return assembleDashboard(resolved, params.Mode, window, dayRows, totals), nil
}

// OrdersByRange retorna a lista crua de pedidos da janela, sem agrupamento e
// sem filtro de status: o filtro de aguardando pagamento vale apenas para as
// agregações do dashboard
func (s *Service) OrdersByRange(ctx context.Context, params ReportParams) (*domain.OrderListReport, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	resolved, err := s.siteResolver.Resolve(ctx, params.Site)
	if err != nil {
		return nil, err
	}

	window, err := PlanWindow(s.now().UTC(), params.Mode, s.cfg.Reporting.Timezone, params.Custom)
	if err != nil {
		return nil, err
	}
	window.SiteID = resolved.ID

	orders, err := s.orderRepository.ListByWindow(ctx, resolved.ID, window.StartUTC, window.EndUTC)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "DB_ERROR", err.Error())
	}

	return &domain.OrderListReport{
		Site:     resolved,
		Mode:     params.Mode,
		Timezone: window.Timezone,
		Window: domain.WindowPayload{
			Start: window.StartUTC,
			End:   window.EndUTC,
		},
		Count:  len(orders),
		Orders: orders,
	}, nil
}

// OrdersByDay retorna os pedidos de um único dia de calendário local. A
// consulta ao banco é alargada por um lookahead configurável para tolerar
// skew de relógio; a pertinência ao dia é decidida pela data de calendário
// local e os limites retornados na resposta são sempre os do dia exato
func (s *Service) OrdersByDay(ctx context.Context, siteIdentifier, date string) (*domain.OrderListReport, error) {
	if siteIdentifier == "" {
		return nil, ErrSiteRequired
	}

	resolved, err := s.siteResolver.Resolve(ctx, siteIdentifier)
	if err != nil {
		return nil, err
	}

	window, err := PlanWindow(s.now().UTC(), domain.ModeCustom, s.cfg.Reporting.Timezone, &domain.CustomRange{
		StartDate: date,
		EndDate:   date,
	})
	if err != nil {
		return nil, err
	}
	window.SiteID = resolved.ID

	loc, err := time.LoadLocation(window.Timezone)
	if err != nil {
		return nil, NewReportError(ErrTimezoneCapability, "TZ_CAPABILITY", window.Timezone)
	}

	lookahead := time.Duration(s.cfg.Reporting.DayLookaheadHours) * time.Hour
	fetched, err := s.orderRepository.ListByWindow(ctx, resolved.ID, window.StartUTC, window.EndUTC.Add(lookahead))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, "DB_ERROR", err.Error())
	}

	orders := make([]*domain.Order, 0, len(fetched))
	for _, order := range fetched {
		if order.CreatedAt.In(loc).Format(time.DateOnly) == date {
			orders = append(orders, order)
		}
	}

	return &domain.OrderListReport{
		Site:     resolved,
		Mode:     domain.ModeCustom,
		Timezone: window.Timezone,
		Window: domain.WindowPayload{
			Start: window.StartUTC,
			End:   window.EndUTC,
		},
		Count:  len(orders),
		Orders: orders,
	}, nil
}

func validateParams(params ReportParams) error {
	if params.Site == "" {
		return ErrSiteRequired
	}

	if !params.Mode.Valid() {
		return NewReportError(ErrInvalidMode, "INVALID_MODE", string(params.Mode))
	}

	if params.Mode == domain.ModeCustom {
		if params.Custom == nil || params.Custom.StartDate == "" || params.Custom.EndDate == "" {
			return ErrMissingRange
		}
	}

	return nil
}
