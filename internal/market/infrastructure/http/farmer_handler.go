package http

import (
	"net/http"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

type registerUserBody struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	ContactNumber string `json:"contactNumber" binding:"required"`
}

type FarmerHandler struct {
	service FarmerService
}

func NewFarmerHandler(service FarmerService) *FarmerHandler {
	return &FarmerHandler{
		service: service,
	}
}

func (h *FarmerHandler) Register(c *gin.Context) {
	var body registerUserBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	farmer, err := h.service.RegisterFarmer(c, domain.Farmer{
		Name:          body.Name,
		Email:         body.Email,
		ContactNumber: body.ContactNumber,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Farmer registered successfully", farmer)
}

func (h *FarmerHandler) List(c *gin.Context) {
	farmers, err := h.service.GetFarmers(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Farmers retrieved successfully", farmers)
}

func (h *FarmerHandler) Delete(c *gin.Context) {
	farmerId, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFarmer(c, farmerId); err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Farmer deleted successfully", nil)
}
