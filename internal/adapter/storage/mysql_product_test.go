package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgo/campus-market/internal/core/domain"
)

func listingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"product_id", "product_name", "price", "description", "category_name", "seller_name"})
}

func TestListProducts_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewProductAdapter(db)

	mock.ExpectQuery("SELECT.+FROM product p.+WHERE p.status = 1.+ORDER BY p.publish_time DESC").
		WillReturnRows(listingRows().
			AddRow(1, "Python Crash Course", 68.5, "like new", "Books", "alice").
			AddRow(2, "Thermos Bottle", 45.0, "", "Daily Goods", "bob"))

	products, err := adapter.ListProducts(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Python Crash Course", products[0].ProductName)
	assert.Equal(t, "alice", products[0].SellerName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_AppliesFilterArgs(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewProductAdapter(db)

	categoryID := int64(1)
	minPrice := 100.0
	maxPrice := 200.0

	mock.ExpectQuery("AND p.category_id = .+AND p.price >= .+AND p.price <=").
		WithArgs(categoryID, minPrice, maxPrice).
		WillReturnRows(listingRows())

	products, err := adapter.ListProducts(context.Background(), domain.ProductFilter{
		CategoryID: &categoryID,
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	})
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewProductAdapter(db)

	mock.ExpectExec("INSERT INTO product").
		WithArgs("Used iPhone 12", 2999.0, "minor scratches", int64(2), int64(7)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := adapter.CreateProduct(context.Background(), domain.NewProduct{
		Name:        "Used iPhone 12",
		Price:       2999.0,
		Description: "minor scratches",
		CategoryID:  2,
		OwnerID:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewProductAdapter(db)

	mock.ExpectQuery("SELECT category_id, category_name").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "description"}).
			AddRow(1, "Books", "textbooks and novels").
			AddRow(2, "Electronics", ""))

	categories, err := adapter.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Books", categories[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}
