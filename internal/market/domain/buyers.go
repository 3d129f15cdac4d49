package domain

import "context"

type Buyer struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

type BuyerRepository interface {
	CreateBuyer(ctx context.Context, buyer Buyer) (Buyer, error)
	GetAllBuyers(ctx context.Context) ([]Buyer, error)
	DeleteBuyer(ctx context.Context, buyerId int) error
}
