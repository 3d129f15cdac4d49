package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type FarmerRepository struct {
	queryExecuter database.QueryExecuter
}

func NewFarmerRepository(queryExecuter database.QueryExecuter) *FarmerRepository {
	return &FarmerRepository{
		queryExecuter: queryExecuter,
	}
}

func (fr *FarmerRepository) CreateFarmer(ctx context.Context, farmer domain.Farmer) (domain.Farmer, error) {
	insertFarmerSQL := `INSERT INTO farmers (name, email, contact_number) VALUES ($1, $2, $3) RETURNING id`

	err := fr.queryExecuter.QueryRow(ctx, insertFarmerSQL, farmer.Name, farmer.Email, farmer.ContactNumber).
		Scan(&farmer.Id)
	if err != nil {
		return domain.Farmer{}, fmt.Errorf("failed to insert farmer: %w", err)
	}

	return farmer, nil
}

func (fr *FarmerRepository) GetAllFarmers(ctx context.Context) ([]domain.Farmer, error) {
	selectFarmersSQL := `SELECT id, name, email, contact_number FROM farmers ORDER BY id`

	rows, err := fr.queryExecuter.Query(ctx, selectFarmersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select farmers: %w", err)
	}
	defer rows.Close()

	farmers := make([]domain.Farmer, 0)
	for rows.Next() {
		var farmer domain.Farmer
		if err := rows.Scan(&farmer.Id, &farmer.Name, &farmer.Email, &farmer.ContactNumber); err != nil {
			return nil, fmt.Errorf("failed to scan farmer row: %w", err)
		}
		farmers = append(farmers, farmer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read farmer rows: %w", err)
	}

	return farmers, nil
}

func (fr *FarmerRepository) DeleteFarmer(ctx context.Context, farmerId int) error {
	deleteFarmerSQL := `DELETE FROM farmers WHERE id = $1`

	tag, err := fr.queryExecuter.Exec(ctx, deleteFarmerSQL, farmerId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return &domain.EntityInUseError{Msg: fmt.Sprintf("farmer %d still has crop listings", farmerId)}
		}

		return fmt.Errorf("failed to delete farmer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.FarmerNotFoundError{Msg: fmt.Sprintf("farmer with id %d not found", farmerId)}
	}

	return nil
}
