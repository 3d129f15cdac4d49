package http

import (
	"net/http"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

type createCropBody struct {
	FarmerId          int     `json:"farmerId" binding:"required,gt=0"`
	CropName          string  `json:"cropName" binding:"required"`
	Description       string  `json:"description"`
	AvailableQuantity float64 `json:"availableQuantity" binding:"required,gt=0"`
	PricePerUnit      float64 `json:"pricePerUnit" binding:"required,gt=0"`
	Unit              string  `json:"unit" binding:"required"`
}

type updateCropBody struct {
	PricePerUnit *float64 `json:"pricePerUnit"`
	Description  *string  `json:"description"`
}

type stockResponse struct {
	CropId            int     `json:"cropId"`
	AvailableQuantity float64 `json:"availableQuantity"`
}

type CropHandler struct {
	service CropService
}

func NewCropHandler(service CropService) *CropHandler {
	return &CropHandler{
		service: service,
	}
}

func (h *CropHandler) Create(c *gin.Context) {
	var body createCropBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	listing, err := h.service.AddCropListing(c, domain.CropListing{
		FarmerId:          body.FarmerId,
		CropName:          body.CropName,
		Description:       body.Description,
		AvailableQuantity: body.AvailableQuantity,
		PricePerUnit:      body.PricePerUnit,
		Unit:              body.Unit,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Crop listing created successfully", listing)
}

func (h *CropHandler) ListAvailable(c *gin.Context) {
	crops, err := h.service.GetAvailableCrops(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Available crops retrieved successfully", crops)
}

func (h *CropHandler) ListByFarmer(c *gin.Context) {
	farmerId, ok := idParam(c)
	if !ok {
		return
	}

	crops, err := h.service.GetCropsForFarmer(c, farmerId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Farmer crops retrieved successfully", crops)
}

func (h *CropHandler) GetStock(c *gin.Context) {
	cropId, ok := idParam(c)
	if !ok {
		return
	}

	quantity, err := h.service.GetAvailableQuantity(c, cropId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Stock retrieved successfully", stockResponse{
		CropId:            cropId,
		AvailableQuantity: quantity,
	})
}

func (h *CropHandler) Update(c *gin.Context) {
	cropId, ok := idParam(c)
	if !ok {
		return
	}

	var body updateCropBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	err := h.service.UpdateListing(c, cropId, domain.ListingUpdate{
		PricePerUnit: body.PricePerUnit,
		Description:  body.Description,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Crop listing updated successfully", nil)
}

func (h *CropHandler) Delete(c *gin.Context) {
	cropId, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveListing(c, cropId); err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Crop listing deleted successfully", nil)
}
