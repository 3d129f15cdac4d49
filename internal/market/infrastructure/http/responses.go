package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TranushReddy/crop-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

const IdKey = "id"

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, apiResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidQuantityError{}) || errors.Is(err, &domain.InvalidArgumentsError{}):
		respondError(c, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, &domain.CropNotFoundError{}) ||
		errors.Is(err, &domain.FarmerNotFoundError{}) ||
		errors.Is(err, &domain.BuyerNotFoundError{}):
		respondError(c, http.StatusNotFound, "not found", err)
	case errors.Is(err, &domain.InsufficientStockError{}):
		respondError(c, http.StatusConflict, "stock conflict", err)
	case errors.Is(err, &domain.PriceMismatchError{}) || errors.Is(err, &domain.EntityInUseError{}):
		respondError(c, http.StatusConflict, "conflict", err)
	default:
		c.JSON(http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "internal server error",
		})
	}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param(IdKey))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid id", &domain.InvalidArgumentsError{Msg: "id must be a positive integer"})
		return 0, false
	}

	return id, true
}
