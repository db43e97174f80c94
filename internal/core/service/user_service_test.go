package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgo/campus-market/internal/core/domain"
)

// Mock UserRepository
type mockUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, username, passwordHash, email string) (int64, error) {
	if _, ok := m.users[username]; ok {
		return 0, domain.ErrDuplicateUsername
	}
	id := m.nextID
	m.nextID++
	m.users[username] = &domain.User{ID: id, Username: username, PasswordHash: passwordHash, Email: email}
	return id, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "secret123", "alice@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	// The stored credential is a hash, never the password itself.
	stored := repo.users["alice"].PasswordHash
	assert.NotEqual(t, "secret123", stored)
	assert.NotEmpty(t, stored)

	logged, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another456", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
