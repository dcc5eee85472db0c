package domain

import (
	"strings"
	"time"
)

// StatusAwaitingPayment é o status de pedidos ainda não pagos, comparado de
// forma case-insensitive. Pedidos nesse status nunca entram nos relatórios.
const StatusAwaitingPayment = "awaiting_payment"

type OrderItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// Dropoff são os dados de contato de entrega do pedido
type Dropoff struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Order struct {
	ID         string      `json:"id"`
	SiteID     string      `json:"site_id"`
	CreatedAt  time.Time   `json:"created_at"`
	Status     string      `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Email      string      `json:"email,omitempty"`
	Phone      string      `json:"phone,omitempty"`
	Dropoff    *Dropoff    `json:"dropoff,omitempty"`
	Items      []OrderItem `json:"items"`
}

// AwaitingPayment indica se o pedido ainda aguarda pagamento
func (o *Order) AwaitingPayment() bool {
	return strings.EqualFold(strings.TrimSpace(o.Status), StatusAwaitingPayment)
}

// CustomerIdentity deriva a identidade do cliente de um pedido seguindo uma
// lista de precedência fixa, compartilhada por todos os consumidores:
//
//  1. telefone do contato de entrega (dropoff)
//  2. telefone do pedido
//  3. email do pedido
//
// Retorna string vazia quando nenhum dos campos está preenchido; nesse caso o
// pedido não contribui para contagens de clientes únicos.
func (o *Order) CustomerIdentity() string {
	if o.Dropoff != nil {
		if phone := strings.TrimSpace(o.Dropoff.Phone); phone != "" {
			return phone
		}
	}

	if phone := strings.TrimSpace(o.Phone); phone != "" {
		return phone
	}

	return strings.ToLower(strings.TrimSpace(o.Email))
}
