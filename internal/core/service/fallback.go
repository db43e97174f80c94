package service

import "github.com/campusgo/campus-market/internal/core/domain"

// Fallback holds the static payloads served when storage is unreachable,
// so the frontend always receives a well-formed response shape. All
// fallback-capable endpoints read from this one collaborator.
type Fallback struct {
	products      []domain.ProductListing
	categories    []domain.Category
	hotCategories []domain.CategoryCount
	priceBuckets  []domain.PriceBucket
}

func DefaultFallback() *Fallback {
	return &Fallback{
		products: []domain.ProductListing{
			{ProductID: 1, ProductName: "Python Crash Course", Price: 68.50, CategoryName: "Books", SellerName: "alice"},
			{ProductID: 2, ProductName: "Used iPhone 12", Price: 2999.00, CategoryName: "Electronics", SellerName: "bob"},
			{ProductID: 3, ProductName: "Thermos Bottle", Price: 45.00, CategoryName: "Daily Goods", SellerName: "carol"},
			{ProductID: 4, ProductName: "Core Java", Price: 89.00, CategoryName: "Books", SellerName: "dave"},
			{ProductID: 5, ProductName: "Xiaomi Power Bank", Price: 79.00, CategoryName: "Electronics", SellerName: "erin"},
		},
		categories: []domain.Category{
			{ID: 1, Name: "Books"},
			{ID: 2, Name: "Electronics"},
			{ID: 3, Name: "Daily Goods"},
			{ID: 4, Name: "Clothing"},
			{ID: 5, Name: "Other"},
		},
		hotCategories: []domain.CategoryCount{
			{Name: "Books", Count: 15},
			{Name: "Electronics", Count: 10},
			{Name: "Daily Goods", Count: 8},
			{Name: "Clothing", Count: 5},
			{Name: "Other", Count: 3},
		},
		priceBuckets: []domain.PriceBucket{
			{Label: "0-50", Count: 20},
			{Label: "51-100", Count: 15},
			{Label: "101-200", Count: 10},
			{Label: "201-500", Count: 5},
			{Label: "500+", Count: 2},
		},
	}
}

// Products applies the price bounds of the filter in memory, mirroring the
// filtering the real query would have done.
func (f *Fallback) Products(filter domain.ProductFilter) []domain.ProductListing {
	out := []domain.ProductListing{}
	for _, p := range f.products {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f *Fallback) Categories() []domain.Category {
	return append([]domain.Category(nil), f.categories...)
}

func (f *Fallback) HotCategories() []domain.CategoryCount {
	return append([]domain.CategoryCount(nil), f.hotCategories...)
}

func (f *Fallback) PriceDistribution() []domain.PriceBucket {
	return append([]domain.PriceBucket(nil), f.priceBuckets...)
}
