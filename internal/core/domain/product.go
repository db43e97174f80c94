package domain

import "time"

type ProductStatus int

const (
	ProductStatusSold      ProductStatus = 0
	ProductStatusAvailable ProductStatus = 1
)

type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	CategoryID  int64
	OwnerID     int64
	Status      ProductStatus
	PublishTime time.Time
	ViewCount   int
}

// NewProduct carries the fields of a publish request; status, publish time
// and view count are assigned by the storage layer.
type NewProduct struct {
	Name        string
	Price       float64
	Description string
	CategoryID  int64
	OwnerID     int64
}

// ProductFilter narrows a product listing. Nil fields mean "no bound";
// price bounds are inclusive.
type ProductFilter struct {
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
}

// ProductListing is one row of the public product list, joined with the
// category and seller names.
type ProductListing struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category_name"`
	SellerName   string  `json:"seller_name"`
}

// UserProduct is one row of a seller's own product list, any status,
// with the number of users who favorited it.
type UserProduct struct {
	ProductID     int64         `json:"product_id"`
	ProductName   string        `json:"product_name"`
	Price         float64       `json:"price"`
	Description   string        `json:"description"`
	CategoryID    int64         `json:"category_id"`
	Status        ProductStatus `json:"status"`
	PublishTime   time.Time     `json:"publish_time"`
	ViewCount     int           `json:"view_count"`
	CategoryName  string        `json:"category_name"`
	FavoriteCount int           `json:"favorite_count"`
}
