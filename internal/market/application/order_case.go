package application

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/market/domain"
)

type OrderCase struct {
	orderRepository domain.OrderRepository
}

func NewOrderCase(orderRepository domain.OrderRepository) *OrderCase {
	return &OrderCase{
		orderRepository: orderRepository,
	}
}

func (oc *OrderCase) GetOrdersByBuyer(ctx context.Context, buyerId int) ([]domain.BuyerOrder, error) {
	return oc.orderRepository.GetOrdersByBuyer(ctx, buyerId)
}

func (oc *OrderCase) GetOrdersForFarmer(ctx context.Context, farmerId int) ([]domain.OrderSummary, error) {
	return oc.orderRepository.GetOrdersForFarmer(ctx, farmerId)
}

func (oc *OrderCase) GetAllOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return oc.orderRepository.GetAllOrders(ctx)
}
