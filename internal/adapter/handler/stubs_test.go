package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

// In-memory port implementations backing full-stack handler tests: real
// services over fake repositories, no database.

type fakeUserRepo struct {
	users    map[string]*domain.User
	nextID   int64
	getCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, username, passwordHash, email string) (int64, error) {
	if _, ok := f.users[username]; ok {
		return 0, domain.ErrDuplicateUsername
	}
	id := f.nextID
	f.nextID++
	f.users[username] = &domain.User{ID: id, Username: username, PasswordHash: passwordHash, Email: email}
	return id, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.getCalls++
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type fakeProductRepo struct {
	listings   []domain.ProductListing
	userItems  []domain.UserProduct
	categories []domain.Category
	lastFilter domain.ProductFilter
	nextID     int64
	err        error
}

func (f *fakeProductRepo) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductListing, error) {
	f.lastFilter = filter
	return f.listings, f.err
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p domain.NewProduct) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeProductRepo) ListUserProducts(ctx context.Context, userID int64) ([]domain.UserProduct, error) {
	return f.userItems, f.err
}

func (f *fakeProductRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

type fakeFavoriteRepo struct {
	pairs map[[2]int64]bool
	err   error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{pairs: make(map[[2]int64]bool)}
}

func (f *fakeFavoriteRepo) ToggleFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := [2]int64{userID, productID}
	if f.pairs[key] {
		delete(f.pairs, key)
		return false, nil
	}
	f.pairs[key] = true
	return true, nil
}

func (f *fakeFavoriteRepo) ListUserFavorites(ctx context.Context, userID int64) ([]domain.FavoriteItem, error) {
	return nil, f.err
}

func (f *fakeFavoriteRepo) IsFavorite(ctx context.Context, userID, productID int64) (bool, error) {
	return f.pairs[[2]int64{userID, productID}], f.err
}

type fakeOrderRepo struct {
	receipt *domain.OrderReceipt
	err     error
}

func (f *fakeOrderRepo) PlaceOrder(ctx context.Context, productID, buyerID int64) (*domain.OrderReceipt, error) {
	return f.receipt, f.err
}

type fakeStatsRepo struct {
	hot     []domain.CategoryCount
	buckets []domain.PriceBucket
	stats   *domain.TableStats
	err     error
}

func (f *fakeStatsRepo) HotCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	return f.hot, f.err
}

func (f *fakeStatsRepo) PriceDistribution(ctx context.Context) ([]domain.PriceBucket, error) {
	return f.buckets, f.err
}

func (f *fakeStatsRepo) TableStats(ctx context.Context) (*domain.TableStats, error) {
	return f.stats, f.err
}

type testEnv struct {
	router    *gin.Engine
	users     *fakeUserRepo
	products  *fakeProductRepo
	favorites *fakeFavoriteRepo
	orders    *fakeOrderRepo
	stats     *fakeStatsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:     newFakeUserRepo(),
		products:  &fakeProductRepo{},
		favorites: newFakeFavoriteRepo(),
		orders:    &fakeOrderRepo{},
		stats:     &fakeStatsRepo{},
	}

	fallback := service.DefaultFallback()
	svc := Services{
		Users:     service.NewUserService(env.users),
		Products:  service.NewProductService(env.products, fallback, zerolog.Nop()),
		Favorites: service.NewFavoriteService(env.favorites),
		Orders:    service.NewOrderService(env.orders),
		Stats:     service.NewStatsService(env.stats, fallback, zerolog.Nop()),
	}
	env.router = NewRouter(svc, t.TempDir(), zerolog.Nop())
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}
