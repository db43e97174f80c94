package service

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/port"
)

type FavoriteService struct {
	favorites port.FavoriteRepository
}

func NewFavoriteService(favorites port.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites}
}

// Toggle flips the favorite state and reports the resulting state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	return s.favorites.ToggleFavorite(ctx, userID, productID)
}

func (s *FavoriteService) UserFavorites(ctx context.Context, userID int64) ([]domain.FavoriteItem, error) {
	return s.favorites.ListUserFavorites(ctx, userID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	return s.favorites.IsFavorite(ctx, userID, productID)
}
