package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type CropLocker struct {
}

func NewCropLocker() *CropLocker {
	return &CropLocker{}
}

// LockAndGetCropStock takes the row lock that serializes all purchases of a
// single listing. The lock is held until the surrounding transaction ends.
func (cl *CropLocker) LockAndGetCropStock(ctx context.Context, querier database.Querier, cropId int) (domain.CropStock, error) {
	lockCropSQL := `SELECT available_quantity, price_per_unit FROM crops WHERE id = $1 FOR UPDATE`

	var stock domain.CropStock
	err := querier.QueryRow(ctx, lockCropSQL, cropId).Scan(&stock.AvailableQuantity, &stock.PricePerUnit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CropStock{}, &domain.CropNotFoundError{Msg: fmt.Sprintf("crop listing with id %d not found", cropId)}
		}

		return domain.CropStock{}, fmt.Errorf("failed to lock crop row: %w", err)
	}

	return stock, nil
}
