package http

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/market/domain"
)

type PurchaseService interface {
	PlaceOrder(ctx context.Context, request domain.PurchaseRequest) (domain.Order, error)
}

type FarmerService interface {
	RegisterFarmer(ctx context.Context, farmer domain.Farmer) (domain.Farmer, error)
	GetFarmers(ctx context.Context) ([]domain.Farmer, error)
	RemoveFarmer(ctx context.Context, farmerId int) error
}

type BuyerService interface {
	RegisterBuyer(ctx context.Context, buyer domain.Buyer) (domain.Buyer, error)
	GetBuyers(ctx context.Context) ([]domain.Buyer, error)
	RemoveBuyer(ctx context.Context, buyerId int) error
}

type CropService interface {
	AddCropListing(ctx context.Context, listing domain.CropListing) (domain.CropListing, error)
	GetAvailableCrops(ctx context.Context) ([]domain.CropListing, error)
	GetCropsForFarmer(ctx context.Context, farmerId int) ([]domain.CropListing, error)
	GetAvailableQuantity(ctx context.Context, cropId int) (float64, error)
	UpdateListing(ctx context.Context, cropId int, update domain.ListingUpdate) error
	RemoveListing(ctx context.Context, cropId int) error
}

type OrderService interface {
	GetOrdersByBuyer(ctx context.Context, buyerId int) ([]domain.BuyerOrder, error)
	GetOrdersForFarmer(ctx context.Context, farmerId int) ([]domain.OrderSummary, error)
	GetAllOrders(ctx context.Context) ([]domain.OrderSummary, error)
}
