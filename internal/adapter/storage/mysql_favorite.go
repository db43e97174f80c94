package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type FavoriteAdapter struct {
	db *sql.DB
}

func NewFavoriteAdapter(db *sql.DB) *FavoriteAdapter {
	return &FavoriteAdapter{db: db}
}

// ToggleFavorite deletes the pair first; if nothing was deleted it inserts
// under the unique (user_id, product_id) key. Each statement is atomic, so
// two concurrent toggles serialize on the unique index instead of racing
// a separate existence check.
func (a *FavoriteAdapter) ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	res, err := a.db.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = ? AND product_id = ?`,
		userID, productID,
	)
	if err != nil {
		return false, classify("delete favorite", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, product_id) VALUES (?, ?)`,
		userID, productID,
	)
	if isDuplicateKey(err) {
		// Lost a race with a concurrent toggle; the pair exists now.
		return true, nil
	}
	if err != nil {
		return false, classify("insert favorite", err)
	}
	return true, nil
}

func (a *FavoriteAdapter) ListUserFavorites(ctx context.Context, userID int64) ([]domain.FavoriteItem, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT
			p.product_id,
			p.product_name,
			p.price,
			COALESCE(p.description, '') AS description,
			c.category_name,
			f.created_at
		FROM favorites f
		JOIN product p ON f.product_id = p.product_id
		JOIN category c ON p.category_id = c.category_id
		WHERE f.user_id = ? AND p.status = 1
		ORDER BY f.created_at DESC`, userID,
	)
	if err != nil {
		return nil, classify("query favorites", err)
	}
	defer rows.Close()

	favorites := []domain.FavoriteItem{}
	for rows.Next() {
		var f domain.FavoriteItem
		if err := rows.Scan(&f.ProductID, &f.ProductName, &f.Price, &f.Description, &f.CategoryName, &f.CreatedAt); err != nil {
			return nil, classify("scan favorite", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate favorites", err)
	}
	return favorites, nil
}

func (a *FavoriteAdapter) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	var id int64
	err := a.db.QueryRowContext(ctx, `
		SELECT favorite_id FROM favorites WHERE user_id = ? AND product_id = ?`,
		userID, productID,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, classify("query favorite", err)
	}
	return true, nil
}
