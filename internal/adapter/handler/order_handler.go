package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	ProductID int64 `json:"product_id"`
	BuyerID   int64 `json:"buyer_id"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 || req.BuyerID == 0 {
		respondError(c, http.StatusBadRequest, "missing parameters")
		return
	}

	receipt, err := h.orders.Place(c.Request.Context(), req.ProductID, req.BuyerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "product not found or already sold")
	case errors.Is(err, domain.ErrSelfPurchase):
		respondError(c, http.StatusBadRequest, "cannot buy your own product")
	case errors.Is(err, domain.ErrOrderConflict):
		respondError(c, http.StatusBadRequest, "product already has an unfinished order")
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "failed to place order")
	default:
		respondOK(c, "order placed", gin.H{
			"order_id":     receipt.OrderID,
			"product_name": receipt.ProductName,
			"price":        receipt.Price,
		})
	}
}
