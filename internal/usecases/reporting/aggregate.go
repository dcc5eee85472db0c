package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/order-reports-api/internal/domain"
)

type dayAccumulator struct {
	orderCount   int
	revenueCents int64
	customers    map[string]struct{}
}

// aggregateOrders agrupa os pedidos da janela por dia de calendário local e
// calcula os totais da janela inteira em uma única passada.
//
// Pedidos aguardando pagamento são excluídos de tudo. As contagens de únicos
// dos totais usam conjuntos sobre a janela inteira: elas NÃO são a soma dos
// distintos por dia (um cliente que pede em dois dias conta uma vez nos
// totais e uma vez em cada dia), e essa diferença é intencional.
//
// Se o fuso da janela não puder ser resolvido no banco de fusos do host, a
// operação falha com ErrTimezoneCapability: nunca degradamos para agrupamento
// por dia UTC, que produziria contagens erradas.
func aggregateOrders(orders []*domain.Order, window *domain.ReportWindow) ([]*domain.DayAggregate, *domain.WindowTotals, error) {
	loc, err := time.LoadLocation(window.Timezone)
	if err != nil {
		return nil, nil, NewReportError(ErrTimezoneCapability, "TZ_CAPABILITY", window.Timezone)
	}

	days := make(map[string]*dayAccumulator)
	windowCustomers := make(map[string]struct{})
	windowItems := make(map[string]struct{})
	totals := &domain.WindowTotals{}

	for _, order := range orders {
		if order.AwaitingPayment() {
			continue
		}

		key := order.CreatedAt.In(loc).Format(time.DateOnly)

		accum, ok := days[key]
		if !ok {
			accum = &dayAccumulator{customers: make(map[string]struct{})}
			days[key] = accum
		}

		accum.orderCount++
		accum.revenueCents += order.TotalCents
		totals.OrderCount++
		totals.RevenueCents += order.TotalCents

		if identity := order.CustomerIdentity(); identity != "" {
			accum.customers[identity] = struct{}{}
			windowCustomers[identity] = struct{}{}
		}

		// Pedido sem itens não contribui para o conjunto de itens únicos
		for _, item := range order.Items {
			if name := strings.TrimSpace(item.Name); name != "" {
				windowItems[name] = struct{}{}
			}
		}
	}

	totals.UniqueCustomerCount = len(windowCustomers)
	totals.UniqueMenuItemCount = len(windowItems)

	// Emite as linhas na ordem dos buckets da janela; dias sem pedidos não
	// geram linha e são preenchidos com zeros na montagem da resposta
	dayRows := make([]*domain.DayAggregate, 0, len(days))
	for _, bucket := range window.Buckets {
		accum, ok := days[bucket.DateKey]
		if !ok {
			continue
		}

		dayRows = append(dayRows, &domain.DayAggregate{
			DateKey:             bucket.DateKey,
			OrderCount:          accum.orderCount,
			RevenueCents:        accum.revenueCents,
			UniqueCustomerCount: len(accum.customers),
		})
	}

	return dayRows, totals, nil
}
