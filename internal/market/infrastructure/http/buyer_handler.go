package http

import (
	"net/http"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

type BuyerHandler struct {
	service BuyerService
}

func NewBuyerHandler(service BuyerService) *BuyerHandler {
	return &BuyerHandler{
		service: service,
	}
}

func (h *BuyerHandler) Register(c *gin.Context) {
	var body registerUserBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	buyer, err := h.service.RegisterBuyer(c, domain.Buyer{
		Name:          body.Name,
		Email:         body.Email,
		ContactNumber: body.ContactNumber,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Buyer registered successfully", buyer)
}

func (h *BuyerHandler) List(c *gin.Context) {
	buyers, err := h.service.GetBuyers(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Buyers retrieved successfully", buyers)
}

func (h *BuyerHandler) Delete(c *gin.Context) {
	buyerId, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveBuyer(c, buyerId); err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Buyer deleted successfully", nil)
}
