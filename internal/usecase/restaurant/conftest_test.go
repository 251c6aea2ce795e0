package restaurant

import (
	"context"
	"testing"
	"time"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

const testRestaurantID = "4b5aaed1-8a40-4f2e-9c96-3b4f6f6e2a01"

// mockRepo implements Repository for tests.
type mockRepo struct {
	getFn    func(ctx context.Context, id string) (domain.Restaurant, error)
	insertFn func(ctx context.Context, rest *domain.Restaurant) error
	searchFn func(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error)
	countFn  func(ctx context.Context) (int, error)
}

func (m *mockRepo) Get(ctx context.Context, id string) (domain.Restaurant, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.Restaurant{}, domain.ErrRestaurantNotFound
}

func (m *mockRepo) Insert(ctx context.Context, rest *domain.Restaurant) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, rest)
	}
	return nil
}

func (m *mockRepo) Search(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, expr, limit)
	}
	return nil, nil
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

// mockReviews implements ReviewReader for tests.
type mockReviews struct {
	listFn func(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error)
}

func (m *mockReviews) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error) {
	if m.listFn != nil {
		return m.listFn(ctx, restaurantID, limit)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo, *mockReviews) {
	t.Helper()
	mr := &mockRepo{}
	mv := &mockReviews{}
	svc := New(mr, mv, 50, 20)
	return svc, mr, mv
}

func testRestaurant(t *testing.T) domain.Restaurant {
	t.Helper()
	return domain.ReconstructRestaurant(
		testRestaurantID, "Neon Noodles", "88 Market St", "Manchester",
		[]string{"asian", "thai"}, []string{"pad thai"},
		true, 1,
		[]string{"spicy"}, "",
		4.3, 93,
	)
}

func testReview(t *testing.T, id string) domain.Review {
	t.Helper()
	return domain.ReconstructReview(
		id, testRestaurantID, "ana",
		5, "", nil,
		time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	)
}
