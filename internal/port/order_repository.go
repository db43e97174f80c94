package port

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type OrderRepository interface {
	// PlaceOrder runs the availability, self-purchase and active-order checks,
	// inserts the order and flips the product to sold, all in one transaction.
	// Returns domain.ErrNotFound, domain.ErrSelfPurchase or
	// domain.ErrOrderConflict when a check fails.
	PlaceOrder(ctx context.Context, productID, buyerID int64) (*domain.OrderReceipt, error)
}
