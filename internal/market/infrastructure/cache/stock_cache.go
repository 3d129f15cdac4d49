package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stockKeyPrefix = "stock:"
	stockKeyTTL    = 5 * time.Minute
)

// StockCache keeps a display-only copy of each listing's available quantity.
// It is never consulted by the purchase transaction.
type StockCache struct {
	client *redis.Client
}

func NewStockCache(client *redis.Client) *StockCache {
	return &StockCache{client: client}
}

func (sc *StockCache) GetStock(ctx context.Context, cropId int) (float64, bool, error) {
	val, err := sc.client.Get(ctx, stockKey(cropId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("failed to read stock key: %w", err)
	}

	quantity, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached stock value: %w", err)
	}

	return quantity, true, nil
}

func (sc *StockCache) SetStock(ctx context.Context, cropId int, quantity float64) error {
	return sc.client.Set(ctx, stockKey(cropId), strconv.FormatFloat(quantity, 'f', -1, 64), stockKeyTTL).Err()
}

func (sc *StockCache) DropStock(ctx context.Context, cropId int) error {
	return sc.client.Del(ctx, stockKey(cropId)).Err()
}

func stockKey(cropId int) string {
	return stockKeyPrefix + strconv.Itoa(cropId)
}
