package domain

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/pkg/database"
)

type CropListing struct {
	Id                int     `json:"id"`
	FarmerId          int     `json:"farmerId"`
	CropName          string  `json:"cropName"`
	Description       string  `json:"description"`
	AvailableQuantity float64 `json:"availableQuantity"`
	PricePerUnit      float64 `json:"pricePerUnit"`
	Unit              string  `json:"unit"`
}

// ListingUpdate carries the only fields a farmer may edit on a live listing.
// Quantity is deliberately absent: stock changes only through purchases.
type ListingUpdate struct {
	PricePerUnit *float64
	Description  *string
}

// CropStock is the locked snapshot of a listing taken inside the purchase
// transaction. PricePerUnit here is authoritative over anything client-sent.
type CropStock struct {
	AvailableQuantity float64
	PricePerUnit      float64
}

type CropRepository interface {
	CreateListing(ctx context.Context, listing CropListing) (CropListing, error)
	GetAvailableCrops(ctx context.Context) ([]CropListing, error)
	GetCropsByFarmer(ctx context.Context, farmerId int) ([]CropListing, error)
	GetAvailableQuantity(ctx context.Context, cropId int) (float64, error)
	UpdateListing(ctx context.Context, cropId int, update ListingUpdate) error
	DeleteListing(ctx context.Context, cropId int) error
}

type CropLocker interface {
	LockAndGetCropStock(ctx context.Context, querier database.Querier, cropId int) (CropStock, error)
}

type StockDisplayCache interface {
	GetStock(ctx context.Context, cropId int) (float64, bool, error)
	SetStock(ctx context.Context, cropId int, quantity float64) error
	DropStock(ctx context.Context, cropId int) error
}
