package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

type StockTransferrer struct{}

func NewStockTransferrer() *StockTransferrer {
	return &StockTransferrer{}
}

// TransferStock decrements the listing's stock and records the order. It must
// run on the same transaction that already holds the crop row lock; both
// writes commit together or not at all.
func (st *StockTransferrer) TransferStock(ctx context.Context, executor database.QueryExecuter, request domain.PurchaseRequest, totalPrice float64) (domain.Order, error) {
	decrementStockSQL := `UPDATE crops SET available_quantity = available_quantity - $1 WHERE id = $2`
	_, err := executor.Exec(ctx, decrementStockSQL, request.Quantity, request.CropId)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to decrement crop stock: %w", err)
	}

	insertOrderSQL := `INSERT INTO orders (buyer_id, crop_id, quantity_purchased, total_price)
		VALUES ($1, $2, $3, $4) RETURNING id, ordered_at`

	order := domain.Order{
		BuyerId:           request.BuyerId,
		CropId:            request.CropId,
		QuantityPurchased: request.Quantity,
		TotalPrice:        totalPrice,
	}

	err = executor.QueryRow(ctx, insertOrderSQL, request.BuyerId, request.CropId, request.Quantity, totalPrice).
		Scan(&order.Id, &order.OrderedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode && pgErr.ConstraintName == "orders_buyer_id_fkey" {
			return domain.Order{}, &domain.BuyerNotFoundError{Msg: fmt.Sprintf("buyer with id %d not found", request.BuyerId)}
		}

		return domain.Order{}, fmt.Errorf("failed to insert order record: %w", err)
	}

	return order, nil
}
