package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type BuyerRepository struct {
	queryExecuter database.QueryExecuter
}

func NewBuyerRepository(queryExecuter database.QueryExecuter) *BuyerRepository {
	return &BuyerRepository{
		queryExecuter: queryExecuter,
	}
}

func (br *BuyerRepository) CreateBuyer(ctx context.Context, buyer domain.Buyer) (domain.Buyer, error) {
	insertBuyerSQL := `INSERT INTO buyers (name, email, contact_number) VALUES ($1, $2, $3) RETURNING id`

	err := br.queryExecuter.QueryRow(ctx, insertBuyerSQL, buyer.Name, buyer.Email, buyer.ContactNumber).
		Scan(&buyer.Id)
	if err != nil {
		return domain.Buyer{}, fmt.Errorf("failed to insert buyer: %w", err)
	}

	return buyer, nil
}

func (br *BuyerRepository) GetAllBuyers(ctx context.Context) ([]domain.Buyer, error) {
	selectBuyersSQL := `SELECT id, name, email, contact_number FROM buyers ORDER BY id`

	rows, err := br.queryExecuter.Query(ctx, selectBuyersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select buyers: %w", err)
	}
	defer rows.Close()

	buyers := make([]domain.Buyer, 0)
	for rows.Next() {
		var buyer domain.Buyer
		if err := rows.Scan(&buyer.Id, &buyer.Name, &buyer.Email, &buyer.ContactNumber); err != nil {
			return nil, fmt.Errorf("failed to scan buyer row: %w", err)
		}
		buyers = append(buyers, buyer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read buyer rows: %w", err)
	}

	return buyers, nil
}

func (br *BuyerRepository) DeleteBuyer(ctx context.Context, buyerId int) error {
	deleteBuyerSQL := `DELETE FROM buyers WHERE id = $1`

	tag, err := br.queryExecuter.Exec(ctx, deleteBuyerSQL, buyerId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return &domain.EntityInUseError{Msg: fmt.Sprintf("buyer %d still has orders", buyerId)}
		}

		return fmt.Errorf("failed to delete buyer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.BuyerNotFoundError{Msg: fmt.Sprintf("buyer with id %d not found", buyerId)}
	}

	return nil
}
