package port

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type ProductRepository interface {
	// ListProducts returns available products matching the filter, newest first.
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductListing, error)

	// CreateProduct inserts a product as available and returns the generated id.
	CreateProduct(ctx context.Context, p domain.NewProduct) (int64, error)

	// ListUserProducts returns all products owned by the user, any status,
	// with favorite counts, newest first.
	ListUserProducts(ctx context.Context, userID int64) ([]domain.UserProduct, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
