package port

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type FavoriteRepository interface {
	// ToggleFavorite atomically flips the favorite state for the pair and
	// reports the resulting state (true = now favorited).
	ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error)

	// ListUserFavorites returns the user's favorited products that are still
	// available, newest favorite first.
	ListUserFavorites(ctx context.Context, userID int64) ([]domain.FavoriteItem, error)

	// IsFavorite reports whether the pair exists.
	IsFavorite(ctx context.Context, userID, productID int64) (bool, error)
}
