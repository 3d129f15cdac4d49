package application

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/logging"
)

type CropCase struct {
	cropRepository domain.CropRepository
	stockCache     domain.StockDisplayCache
	logger         logging.Logger
}

func NewCropCase(cropRepository domain.CropRepository, stockCache domain.StockDisplayCache, logger logging.Logger) *CropCase {
	return &CropCase{
		cropRepository: cropRepository,
		stockCache:     stockCache,
		logger:         logger,
	}
}

func (cc *CropCase) AddCropListing(ctx context.Context, listing domain.CropListing) (domain.CropListing, error) {
	if listing.FarmerId <= 0 || listing.CropName == "" {
		return domain.CropListing{}, &domain.InvalidArgumentsError{Msg: "farmer id and crop name are required"}
	}

	if listing.AvailableQuantity <= 0 {
		return domain.CropListing{}, &domain.InvalidQuantityError{Msg: "available quantity must be greater than zero"}
	}

	if listing.PricePerUnit <= 0 {
		return domain.CropListing{}, &domain.InvalidArgumentsError{Msg: "price per unit must be greater than zero"}
	}

	created, err := cc.cropRepository.CreateListing(ctx, listing)
	if err != nil {
		return domain.CropListing{}, err
	}

	if err := cc.stockCache.SetStock(ctx, created.Id, created.AvailableQuantity); err != nil {
		cc.logger.Warn("failed to warm stock cache for new listing", "cropId", created.Id, "error", err.Error())
	}

	return created, nil
}

func (cc *CropCase) GetAvailableCrops(ctx context.Context) ([]domain.CropListing, error) {
	return cc.cropRepository.GetAvailableCrops(ctx)
}

func (cc *CropCase) GetCropsForFarmer(ctx context.Context, farmerId int) ([]domain.CropListing, error) {
	return cc.cropRepository.GetCropsByFarmer(ctx, farmerId)
}

// GetAvailableQuantity serves the display read. Cache errors fall back to the
// database and are only logged.
func (cc *CropCase) GetAvailableQuantity(ctx context.Context, cropId int) (float64, error) {
	quantity, found, err := cc.stockCache.GetStock(ctx, cropId)
	if err != nil {
		cc.logger.Warn("stock cache read failed", "cropId", cropId, "error", err.Error())
	} else if found {
		return quantity, nil
	}

	quantity, err = cc.cropRepository.GetAvailableQuantity(ctx, cropId)
	if err != nil {
		return 0, err
	}

	if err := cc.stockCache.SetStock(ctx, cropId, quantity); err != nil {
		cc.logger.Warn("failed to refresh stock cache", "cropId", cropId, "error", err.Error())
	}

	return quantity, nil
}

func (cc *CropCase) UpdateListing(ctx context.Context, cropId int, update domain.ListingUpdate) error {
	if update.PricePerUnit == nil && update.Description == nil {
		return &domain.InvalidArgumentsError{Msg: "nothing to update"}
	}

	if update.PricePerUnit != nil && *update.PricePerUnit <= 0 {
		return &domain.InvalidArgumentsError{Msg: "price per unit must be greater than zero"}
	}

	return cc.cropRepository.UpdateListing(ctx, cropId, update)
}

func (cc *CropCase) RemoveListing(ctx context.Context, cropId int) error {
	if err := cc.cropRepository.DeleteListing(ctx, cropId); err != nil {
		return err
	}

	if err := cc.stockCache.DropStock(ctx, cropId); err != nil {
		cc.logger.Warn("failed to drop stock cache entry", "cropId", cropId, "error", err.Error())
	}

	return nil
}
