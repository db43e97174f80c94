package domain

import "time"

type OrderStatus int

// Statuses 1 through 3 are active and block a second order on the same
// product. Only pending is ever written; no endpoint advances an order.
const (
	OrderStatusPending  OrderStatus = 1
	OrderStatusPaid     OrderStatus = 2
	OrderStatusShipping OrderStatus = 3
)

type Order struct {
	ID        int64
	ProductID int64
	BuyerID   int64
	SellerID  int64
	Price     float64
	OrderTime time.Time
	Status    OrderStatus
}

// OrderReceipt is returned to the buyer after a successful placement.
// Price is the snapshot taken at order time.
type OrderReceipt struct {
	OrderID     int64   `json:"order_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}
