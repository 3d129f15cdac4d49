package postgres

import (
	"context"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	querier database.Querier
}

func NewOrderRepository(querier database.Querier) *OrderRepository {
	return &OrderRepository{
		querier: querier,
	}
}

func (or *OrderRepository) GetOrdersByBuyer(ctx context.Context, buyerId int) ([]domain.BuyerOrder, error) {
	selectOrdersSQL := `SELECT o.id, c.crop_name, c.unit, o.quantity_purchased, o.total_price, o.ordered_at
		FROM orders o
		JOIN crops c ON c.id = o.crop_id
		WHERE o.buyer_id = $1
		ORDER BY o.ordered_at DESC`

	rows, err := or.querier.Query(ctx, selectOrdersSQL, buyerId)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders by buyer: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.BuyerOrder, 0)
	for rows.Next() {
		var order domain.BuyerOrder
		err := rows.Scan(&order.OrderId, &order.CropName, &order.Unit,
			&order.QuantityPurchased, &order.TotalPrice, &order.OrderedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	return orders, nil
}

func (or *OrderRepository) GetOrdersForFarmer(ctx context.Context, farmerId int) ([]domain.OrderSummary, error) {
	selectOrdersSQL := `SELECT o.id, b.name, c.crop_name, o.quantity_purchased, o.total_price, o.ordered_at
		FROM orders o
		JOIN crops c ON c.id = o.crop_id
		JOIN buyers b ON b.id = o.buyer_id
		WHERE c.farmer_id = $1
		ORDER BY o.ordered_at DESC`

	rows, err := or.querier.Query(ctx, selectOrdersSQL, farmerId)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders for farmer: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func (or *OrderRepository) GetAllOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	selectOrdersSQL := `SELECT o.id, b.name, c.crop_name, o.quantity_purchased, o.total_price, o.ordered_at
		FROM orders o
		JOIN crops c ON c.id = o.crop_id
		JOIN buyers b ON b.id = o.buyer_id
		ORDER BY o.ordered_at DESC`

	rows, err := or.querier.Query(ctx, selectOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select all orders: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows pgx.Rows) ([]domain.OrderSummary, error) {
	orders := make([]domain.OrderSummary, 0)
	for rows.Next() {
		var order domain.OrderSummary
		err := rows.Scan(&order.OrderId, &order.BuyerName, &order.CropName,
			&order.QuantityPurchased, &order.TotalPrice, &order.OrderedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	return orders, nil
}
