package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type OrderAdapter struct {
	db *sql.DB
}

func NewOrderAdapter(db *sql.DB) *OrderAdapter {
	return &OrderAdapter{db: db}
}

// PlaceOrder checks and writes inside one transaction. The product row is
// locked for the duration, so the availability check, the active-order check
// and the status flip cannot interleave with a concurrent placement.
func (a *OrderAdapter) PlaceOrder(ctx context.Context, productID, buyerID int64) (*domain.OrderReceipt, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify("begin tx", err)
	}
	defer tx.Rollback()

	var (
		sellerID int64
		price    float64
		name     string
	)
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, price, product_name
		FROM product
		WHERE product_id = ? AND status = 1
		FOR UPDATE`, productID,
	).Scan(&sellerID, &price, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, classify("query product", err)
	}

	if sellerID == buyerID {
		return nil, domain.ErrSelfPurchase
	}

	var existing int64
	err = tx.QueryRowContext(ctx, `
		SELECT order_id FROM orders
		WHERE product_id = ? AND status IN (1, 2, 3)`, productID,
	).Scan(&existing)
	if err == nil {
		return nil, domain.ErrOrderConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, classify("query active order", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (product_id, buyer_id, seller_id, price, order_time, status)
		VALUES (?, ?, ?, ?, NOW(), ?)`,
		productID, buyerID, sellerID, price, domain.OrderStatusPending,
	)
	if err != nil {
		return nil, classify("insert order", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, classify("order id", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE product SET status = 0 WHERE product_id = ?`, productID,
	); err != nil {
		return nil, classify("update product status", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify("commit", err)
	}

	return &domain.OrderReceipt{OrderID: orderID, ProductName: name, Price: price}, nil
}
