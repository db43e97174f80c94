package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/campusgo/campus-market/internal/core/domain"
)

// Integration tests run against a real MySQL with the marketplace schema
// already created; they skip when MYSQL_DSN is unset or unreachable.

func getMySQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN not set; skipping mysql integration test")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func TestPlaceOrderIntegration(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")

	seller := mustInsertUser(t, db, "it-seller-"+suffix)
	buyer := mustInsertUser(t, db, "it-buyer-"+suffix)

	var categoryID int64
	res, err := db.ExecContext(ctx, `INSERT INTO category (category_name) VALUES (?)`, "it-cat-"+suffix)
	if err != nil {
		t.Fatalf("setup category: %v", err)
	}
	categoryID, _ = res.LastInsertId()

	products := NewProductAdapter(db)
	productID, err := products.CreateProduct(ctx, domain.NewProduct{
		Name:       "it-product-" + suffix,
		Price:      99.5,
		CategoryID: categoryID,
		OwnerID:    seller,
	})
	if err != nil {
		t.Fatalf("setup product: %v", err)
	}

	orders := NewOrderAdapter(db)

	if _, err := orders.PlaceOrder(ctx, productID, seller); err != domain.ErrSelfPurchase {
		t.Fatalf("self purchase: got %v, want ErrSelfPurchase", err)
	}

	receipt, err := orders.PlaceOrder(ctx, productID, buyer)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if receipt.Price != 99.5 {
		t.Errorf("price snapshot: got %v, want 99.5", receipt.Price)
	}

	var status int
	if err := db.QueryRowContext(ctx, `SELECT status FROM product WHERE product_id = ?`, productID).Scan(&status); err != nil {
		t.Fatalf("query product status: %v", err)
	}
	if status != 0 {
		t.Errorf("product status after order: got %d, want 0", status)
	}

	// Sold products fail the availability check, not the conflict check.
	if _, err := orders.PlaceOrder(ctx, productID, buyer); err != domain.ErrNotFound {
		t.Fatalf("second order: got %v, want ErrNotFound", err)
	}
}

func mustInsertUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO user (username, password, email) VALUES (?, ?, ?)`,
		username, "$2a$10$integration", fmt.Sprintf("%s@campus.edu", username))
	if err != nil {
		t.Fatalf("setup user %s: %v", username, err)
	}
	id, _ := res.LastInsertId()
	return id
}
