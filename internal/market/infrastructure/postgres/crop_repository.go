package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CropRepository struct {
	queryExecuter database.QueryExecuter
}

func NewCropRepository(queryExecuter database.QueryExecuter) *CropRepository {
	return &CropRepository{
		queryExecuter: queryExecuter,
	}
}

func (cr *CropRepository) CreateListing(ctx context.Context, listing domain.CropListing) (domain.CropListing, error) {
	insertCropSQL := `INSERT INTO crops (farmer_id, crop_name, description, available_quantity, price_per_unit, unit)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := cr.queryExecuter.QueryRow(ctx, insertCropSQL,
		listing.FarmerId, listing.CropName, listing.Description,
		listing.AvailableQuantity, listing.PricePerUnit, listing.Unit,
	).Scan(&listing.Id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return domain.CropListing{}, &domain.FarmerNotFoundError{Msg: fmt.Sprintf("farmer with id %d not found", listing.FarmerId)}
		}

		return domain.CropListing{}, fmt.Errorf("failed to insert crop listing: %w", err)
	}

	return listing, nil
}

func (cr *CropRepository) GetAvailableCrops(ctx context.Context) ([]domain.CropListing, error) {
	selectCropsSQL := `SELECT id, farmer_id, crop_name, description, available_quantity, price_per_unit, unit
		FROM crops WHERE available_quantity > 0 ORDER BY id`

	rows, err := cr.queryExecuter.Query(ctx, selectCropsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select available crops: %w", err)
	}
	defer rows.Close()

	return scanCropListings(rows)
}

func (cr *CropRepository) GetCropsByFarmer(ctx context.Context, farmerId int) ([]domain.CropListing, error) {
	selectCropsSQL := `SELECT id, farmer_id, crop_name, description, available_quantity, price_per_unit, unit
		FROM crops WHERE farmer_id = $1 ORDER BY id`

	rows, err := cr.queryExecuter.Query(ctx, selectCropsSQL, farmerId)
	if err != nil {
		return nil, fmt.Errorf("failed to select crops by farmer: %w", err)
	}
	defer rows.Close()

	return scanCropListings(rows)
}

// GetAvailableQuantity is a plain read for display purposes. The purchase path
// never uses it; the authoritative check happens under the row lock.
func (cr *CropRepository) GetAvailableQuantity(ctx context.Context, cropId int) (float64, error) {
	selectQuantitySQL := `SELECT available_quantity FROM crops WHERE id = $1`

	var quantity float64
	err := cr.queryExecuter.QueryRow(ctx, selectQuantitySQL, cropId).Scan(&quantity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.CropNotFoundError{Msg: fmt.Sprintf("crop listing with id %d not found", cropId)}
		}

		return 0, fmt.Errorf("failed to select available quantity: %w", err)
	}

	return quantity, nil
}

func (cr *CropRepository) UpdateListing(ctx context.Context, cropId int, update domain.ListingUpdate) error {
	updateCropSQL := `UPDATE crops SET
		price_per_unit = COALESCE($2, price_per_unit),
		description = COALESCE($3, description)
		WHERE id = $1`

	tag, err := cr.queryExecuter.Exec(ctx, updateCropSQL, cropId, update.PricePerUnit, update.Description)
	if err != nil {
		return fmt.Errorf("failed to update crop listing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.CropNotFoundError{Msg: fmt.Sprintf("crop listing with id %d not found", cropId)}
	}

	return nil
}

func (cr *CropRepository) DeleteListing(ctx context.Context, cropId int) error {
	deleteCropSQL := `DELETE FROM crops WHERE id = $1`

	tag, err := cr.queryExecuter.Exec(ctx, deleteCropSQL, cropId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return &domain.EntityInUseError{Msg: fmt.Sprintf("crop listing %d has recorded orders", cropId)}
		}

		return fmt.Errorf("failed to delete crop listing: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.CropNotFoundError{Msg: fmt.Sprintf("crop listing with id %d not found", cropId)}
	}

	return nil
}

func scanCropListings(rows pgx.Rows) ([]domain.CropListing, error) {
	listings := make([]domain.CropListing, 0)
	for rows.Next() {
		var listing domain.CropListing
		err := rows.Scan(&listing.Id, &listing.FarmerId, &listing.CropName, &listing.Description,
			&listing.AvailableQuantity, &listing.PricePerUnit, &listing.Unit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crop row: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read crop rows: %w", err)
	}

	return listings, nil
}
