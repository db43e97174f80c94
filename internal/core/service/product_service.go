package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/port"
)

type ProductService struct {
	products port.ProductRepository
	fallback *Fallback
	log      zerolog.Logger
}

func NewProductService(products port.ProductRepository, fallback *Fallback, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, fallback: fallback, log: log}
}

// List never fails: when storage is unreachable it serves the fallback
// catalog with the price bounds applied, and on any other query error it
// serves an empty list so the frontend still renders.
func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter) []domain.ProductListing {
	products, err := s.products.ListProducts(ctx, filter)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		s.log.Warn().Err(err).Msg("product list: storage unavailable, serving fallback")
		return s.fallback.Products(filter)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("product list query failed")
		return []domain.ProductListing{}
	}
	return products
}

func (s *ProductService) Publish(ctx context.Context, p domain.NewProduct) (int64, error) {
	return s.products.CreateProduct(ctx, p)
}

func (s *ProductService) UserProducts(ctx context.Context, userID int64) ([]domain.UserProduct, error) {
	return s.products.ListUserProducts(ctx, userID)
}

// Categories substitutes the fixed category set on any storage error.
func (s *ProductService) Categories(ctx context.Context) []domain.Category {
	categories, err := s.products.ListCategories(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("categories query failed, serving fallback")
		return s.fallback.Categories()
	}
	return categories
}
