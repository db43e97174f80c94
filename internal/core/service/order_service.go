package service

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/port"
)

type OrderService struct {
	orders port.OrderRepository
}

func NewOrderService(orders port.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Place creates an order for the product on behalf of the buyer. The checks
// and writes run inside one storage transaction; on failure no partial state
// is retained.
func (s *OrderService) Place(ctx context.Context, productID, buyerID int64) (*domain.OrderReceipt, error) {
	return s.orders.PlaceOrder(ctx, productID, buyerID)
}
