package domain

import (
	"context"
	"time"

	"github.com/TranushReddy/crop-market/internal/pkg/database"
)

type Order struct {
	Id                int       `json:"id"`
	BuyerId           int       `json:"buyerId"`
	CropId            int       `json:"cropId"`
	QuantityPurchased float64   `json:"quantityPurchased"`
	TotalPrice        float64   `json:"totalPrice"`
	OrderedAt         time.Time `json:"orderedAt"`
}

type PurchaseRequest struct {
	BuyerId   int
	CropId    int
	Quantity  float64
	UnitPrice float64
}

// BuyerOrder is an order as shown to the buyer who placed it.
type BuyerOrder struct {
	OrderId           int       `json:"orderId"`
	CropName          string    `json:"cropName"`
	Unit              string    `json:"unit"`
	QuantityPurchased float64   `json:"quantityPurchased"`
	TotalPrice        float64   `json:"totalPrice"`
	OrderedAt         time.Time `json:"orderedAt"`
}

// OrderSummary is an order as shown on farmer and admin reports.
type OrderSummary struct {
	OrderId           int       `json:"orderId"`
	BuyerName         string    `json:"buyerName"`
	CropName          string    `json:"cropName"`
	QuantityPurchased float64   `json:"quantityPurchased"`
	TotalPrice        float64   `json:"totalPrice"`
	OrderedAt         time.Time `json:"orderedAt"`
}

type StockTransferrer interface {
	TransferStock(ctx context.Context, executor database.QueryExecuter, request PurchaseRequest, totalPrice float64) (Order, error)
}

type OrderRepository interface {
	GetOrdersByBuyer(ctx context.Context, buyerId int) ([]BuyerOrder, error)
	GetOrdersForFarmer(ctx context.Context, farmerId int) ([]OrderSummary, error)
	GetAllOrders(ctx context.Context) ([]OrderSummary, error)
}
