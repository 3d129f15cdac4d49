package application

import (
	"context"
	"math"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/TranushReddy/crop-market/internal/pkg/logging"
)

// priceEpsilon bounds the allowed drift between the client-sent unit price and
// the listing's current price. Anything larger rejects the purchase.
const priceEpsilon = 1e-9

type PurchaseCase struct {
	cropLocker       domain.CropLocker
	stockTransferrer domain.StockTransferrer
	stockCache       domain.StockDisplayCache
	txManager        database.TxManager
	logger           logging.Logger
}

func NewPurchaseCase(
	cropLocker domain.CropLocker,
	stockTransferrer domain.StockTransferrer,
	stockCache domain.StockDisplayCache,
	txManager database.TxManager,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		cropLocker:       cropLocker,
		stockTransferrer: stockTransferrer,
		stockCache:       stockCache,
		txManager:        txManager,
		logger:           logger,
	}
}

// PlaceOrder validates the purchase intent and runs the stock transfer as one
// transaction: lock the crop row, verify price and stock, decrement, record
// the order. Validation failures never reach the database.
func (pc *PurchaseCase) PlaceOrder(ctx context.Context, request domain.PurchaseRequest) (domain.Order, error) {
	if request.Quantity <= 0 {
		return domain.Order{}, &domain.InvalidQuantityError{Msg: "quantity must be greater than zero"}
	}

	if request.UnitPrice <= 0 {
		return domain.Order{}, &domain.InvalidArgumentsError{Msg: "price per unit must be greater than zero"}
	}

	var order domain.Order

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		stock, err := pc.cropLocker.LockAndGetCropStock(ctx, executor, request.CropId)
		if err != nil {
			return err
		}

		if math.Abs(stock.PricePerUnit-request.UnitPrice) > priceEpsilon {
			return &domain.PriceMismatchError{Msg: "price per unit does not match the current listing price"}
		}

		if stock.AvailableQuantity < request.Quantity {
			return &domain.InsufficientStockError{Msg: "insufficient stock for requested quantity"}
		}

		totalPrice := request.Quantity * stock.PricePerUnit

		order, err = pc.stockTransferrer.TransferStock(ctx, executor, request, totalPrice)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	// The cached quantity is invalidated rather than rewritten: two purchases
	// committing close together could otherwise publish snapshots out of order.
	// Best effort either way; the committed row is the truth.
	if err := pc.stockCache.DropStock(ctx, request.CropId); err != nil {
		pc.logger.Warn("failed to invalidate stock cache after purchase", "cropId", request.CropId, "error", err.Error())
	}

	return order, nil
}
