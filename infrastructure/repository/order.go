package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/order-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-reports-api/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

type OrderRepository interface {
	// ListByWindow retorna os pedidos do site com created_at dentro do
	// intervalo UTC [startUTC, endUTC), com seus itens, ordenados por data
	ListByWindow(ctx context.Context, siteID string, startUTC, endUTC time.Time) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListByWindow(ctx context.Context, siteID string, startUTC, endUTC time.Time) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.site_id, o.created_at, o.status, o.total_cents, o.email, o.phone, o.dropoff_name, o.dropoff_phone, o.dropoff_address").
		From(ordersTable).
		Where(squirrel.Eq{"o.site_id": siteID}).
		Where(squirrel.GtOrEq{"o.created_at": startUTC}).
		Where(squirrel.Lt{"o.created_at": endUTC}).
		OrderBy("o.created_at ASC, o.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.attachItems(ctx, byID); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems busca os itens de todos os pedidos em uma única query e os
// anexa aos pedidos correspondentes
func (r *orderRepository) attachItems(ctx context.Context, byID map[string]*domain.Order) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := squirrel.
		Select("oi.order_id, oi.id, oi.name, oi.quantity, oi.price_cents").
		From(orderItemsTable).
		Where("oi.order_id = ANY(?)", pq.Array(ids)).
		OrderBy("oi.order_id ASC, oi.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		item := domain.OrderItem{}

		err := rows.Scan(&orderID, &item.ID, &item.Name, &item.Quantity, &item.PriceCents)
		if err != nil {
			return fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}

		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}

func scanOrder(rows *sql.Rows) (*domain.Order, error) {
	order := &domain.Order{}
	var email, phone, dropoffName, dropoffPhone, dropoffAddress sql.NullString

	err := rows.Scan(
		&order.ID,
		&order.SiteID,
		&order.CreatedAt,
		&order.Status,
		&order.TotalCents,
		&email,
		&phone,
		&dropoffName,
		&dropoffPhone,
		&dropoffAddress,
	)
	if err != nil {
		return nil, err
	}

	order.Email = email.String
	order.Phone = phone.String
	order.Items = make([]domain.OrderItem, 0)

	// created_at é armazenado como timestamptz; normalizamos a representação
	// para UTC para que a conversão de fuso aconteça em um único lugar
	order.CreatedAt = order.CreatedAt.UTC()

	if dropoffName.String != "" || dropoffPhone.String != "" || dropoffAddress.String != "" {
		order.Dropoff = &domain.Dropoff{
			Name:    dropoffName.String,
			Phone:   dropoffPhone.String,
			Address: dropoffAddress.String,
		}
	}

	return order, nil
}
