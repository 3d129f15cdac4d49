package http

import (
	"net/http"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

// Quantity and price are unvalidated here on purpose: zero and negative values
// must reach the purchase coordinator so they map to the domain error kinds.
type purchaseBody struct {
	BuyerId           int     `json:"buyerId" binding:"required,gt=0"`
	CropId            int     `json:"cropId" binding:"required,gt=0"`
	QuantityPurchased float64 `json:"quantityPurchased"`
	PricePerUnit      float64 `json:"pricePerUnit"`
}

type OrderHandler struct {
	purchaseService PurchaseService
	orderService    OrderService
}

func NewOrderHandler(purchaseService PurchaseService, orderService OrderService) *OrderHandler {
	return &OrderHandler{
		purchaseService: purchaseService,
		orderService:    orderService,
	}
}

func (h *OrderHandler) Purchase(c *gin.Context) {
	var body purchaseBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.purchaseService.PlaceOrder(c, domain.PurchaseRequest{
		BuyerId:   body.BuyerId,
		CropId:    body.CropId,
		Quantity:  body.QuantityPurchased,
		UnitPrice: body.PricePerUnit,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Purchase successful", order)
}

func (h *OrderHandler) ListByBuyer(c *gin.Context) {
	buyerId, ok := idParam(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByBuyer(c, buyerId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Buyer orders retrieved successfully", orders)
}

func (h *OrderHandler) ListForFarmer(c *gin.Context) {
	farmerId, ok := idParam(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersForFarmer(c, farmerId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Farmer orders retrieved successfully", orders)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondOK(c, "Orders retrieved successfully", orders)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
