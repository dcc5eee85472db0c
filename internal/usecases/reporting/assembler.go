package reporting

import (
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/pkg/utils"
)

// assembleDashboard alinha as linhas agregadas sobre a lista completa de
// buckets da janela, preenchendo (0, 0.00, 0) para dias sem pedidos, e
// converte receita de centavos inteiros para moeda com duas casas decimais
func assembleDashboard(
	site *domain.Site,
	mode domain.Mode,
	window *domain.ReportWindow,
	dayRows []*domain.DayAggregate,
	totals *domain.WindowTotals,
) *domain.DashboardReport {
	rowsByKey := make(map[string]*domain.DayAggregate, len(dayRows))
	for _, row := range dayRows {
		rowsByKey[row.DateKey] = row
	}

	labels := make([]string, 0, len(window.Buckets))
	orders := make([]int, 0, len(window.Buckets))
	revenue := make([]float64, 0, len(window.Buckets))
	customers := make([]int, 0, len(window.Buckets))

	for _, bucket := range window.Buckets {
		labels = append(labels, bucket.Label)

		row, ok := rowsByKey[bucket.DateKey]
		if !ok {
			orders = append(orders, 0)
			revenue = append(revenue, 0)
			customers = append(customers, 0)
			continue
		}

		orders = append(orders, row.OrderCount)
		revenue = append(revenue, utils.CentsToCurrency(row.RevenueCents))
		customers = append(customers, row.UniqueCustomerCount)
	}

	return &domain.DashboardReport{
		Site:     site,
		Mode:     mode,
		Timezone: window.Timezone,
		Window: domain.WindowPayload{
			Start: window.StartUTC,
			End:   window.EndUTC,
		},
		Labels:    labels,
		Orders:    orders,
		Revenue:   revenue,
		Customers: customers,
		Totals: domain.TotalsPayload{
			Orders:    totals.OrderCount,
			Revenue:   utils.CentsToCurrency(totals.RevenueCents),
			Customers: totals.UniqueCustomerCount,
			Items:     totals.UniqueMenuItemCount,
		},
	}
}
