package reporting

import (
	"context"

	"github.com/vfg2006/order-reports-api/internal/domain"
)

// ReportParams são os parâmetros já extraídos da requisição de relatório
type ReportParams struct {
	Site   string
	Mode   domain.Mode
	Custom *domain.CustomRange
}

// Reporter define a interface de relatórios de atividade de pedidos
type Reporter interface {
	// Dashboard produz a série por dia de calendário e os totais da janela
	Dashboard(ctx context.Context, params ReportParams) (*domain.DashboardReport, error)

	// OrdersByRange retorna a lista crua de pedidos da janela resolvida, sem
	// agrupamento por dia, com a mesma semântica de janela do dashboard
	OrdersByRange(ctx context.Context, params ReportParams) (*domain.OrderListReport, error)

	// OrdersByDay retorna os pedidos de um único dia de calendário local
	OrdersByDay(ctx context.Context, siteIdentifier, date string) (*domain.OrderListReport, error)
}
