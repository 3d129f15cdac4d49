package application

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/market/domain"
)

type BuyerCase struct {
	buyerRepository domain.BuyerRepository
}

func NewBuyerCase(buyerRepository domain.BuyerRepository) *BuyerCase {
	return &BuyerCase{
		buyerRepository: buyerRepository,
	}
}

func (bc *BuyerCase) RegisterBuyer(ctx context.Context, buyer domain.Buyer) (domain.Buyer, error) {
	if buyer.Name == "" || buyer.Email == "" || buyer.ContactNumber == "" {
		return domain.Buyer{}, &domain.InvalidArgumentsError{Msg: "name, email and contact number are required"}
	}

	return bc.buyerRepository.CreateBuyer(ctx, buyer)
}

func (bc *BuyerCase) GetBuyers(ctx context.Context) ([]domain.Buyer, error) {
	return bc.buyerRepository.GetAllBuyers(ctx)
}

func (bc *BuyerCase) RemoveBuyer(ctx context.Context, buyerId int) error {
	return bc.buyerRepository.DeleteBuyer(ctx, buyerId)
}
