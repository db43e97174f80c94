package domain

import "time"

type Favorite struct {
	ID        int64
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}

// FavoriteItem is one row of a user's favorites list: the favorited product
// joined with its category name.
type FavoriteItem struct {
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
}
