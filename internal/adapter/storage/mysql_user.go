package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type UserAdapter struct {
	db *sql.DB
}

func NewUserAdapter(db *sql.DB) *UserAdapter {
	return &UserAdapter{db: db}
}

func (a *UserAdapter) CreateUser(ctx context.Context, username, passwordHash, email string) (int64, error) {
	res, err := a.db.ExecContext(ctx, `
		INSERT INTO user (username, password, email)
		VALUES (?, ?, ?)`,
		username, passwordHash, email,
	)
	if isDuplicateKey(err) {
		return 0, domain.ErrDuplicateUsername
	}
	if err != nil {
		return 0, classify("insert user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify("user id", err)
	}
	return id, nil
}

func (a *UserAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := a.db.QueryRowContext(ctx, `
		SELECT user_id, username, password, email
		FROM user WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, classify("query user", err)
	}
	return &u, nil
}
