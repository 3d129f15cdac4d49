package cache

import "context"

// Disabled stands in when no Redis address is configured. Every read is a
// miss, so callers fall through to the database.
type Disabled struct{}

func NewDisabled() *Disabled {
	return &Disabled{}
}

func (d *Disabled) GetStock(ctx context.Context, cropId int) (float64, bool, error) {
	return 0, false, nil
}

func (d *Disabled) SetStock(ctx context.Context, cropId int, quantity float64) error {
	return nil
}

func (d *Disabled) DropStock(ctx context.Context, cropId int) error {
	return nil
}
