package domain

import "context"

type Farmer struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

type FarmerRepository interface {
	CreateFarmer(ctx context.Context, farmer Farmer) (Farmer, error)
	GetAllFarmers(ctx context.Context) ([]Farmer, error)
	DeleteFarmer(ctx context.Context, farmerId int) error
}
