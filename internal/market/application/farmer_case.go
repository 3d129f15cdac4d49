package application

import (
	"context"

	"github.com/TranushReddy/crop-market/internal/market/domain"
)

type FarmerCase struct {
	farmerRepository domain.FarmerRepository
}

func NewFarmerCase(farmerRepository domain.FarmerRepository) *FarmerCase {
	return &FarmerCase{
		farmerRepository: farmerRepository,
	}
}

func (fc *FarmerCase) RegisterFarmer(ctx context.Context, farmer domain.Farmer) (domain.Farmer, error) {
	if farmer.Name == "" || farmer.Email == "" || farmer.ContactNumber == "" {
		return domain.Farmer{}, &domain.InvalidArgumentsError{Msg: "name, email and contact number are required"}
	}

	return fc.farmerRepository.CreateFarmer(ctx, farmer)
}

func (fc *FarmerCase) GetFarmers(ctx context.Context) ([]domain.Farmer, error) {
	return fc.farmerRepository.GetAllFarmers(ctx)
}

func (fc *FarmerCase) RemoveFarmer(ctx context.Context, farmerId int) error {
	return fc.farmerRepository.DeleteFarmer(ctx, farmerId)
}
