package review

import (
	"context"
	"testing"
	"time"

	"github.com/localeats/localeats/internal/domain"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	insertFn          func(ctx context.Context, rev *domain.Review) error
	allByRestaurantFn func(ctx context.Context, restaurantID string) ([]domain.Review, error)
}

func (m *mockRepo) Insert(ctx context.Context, rev *domain.Review) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, rev)
	}
	return nil
}

func (m *mockRepo) AllByRestaurant(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	if m.allByRestaurantFn != nil {
		return m.allByRestaurantFn(ctx, restaurantID)
	}
	return nil, nil
}

// mockRatings implements RatingWriter for tests.
type mockRatings struct {
	updateRatingFn func(ctx context.Context, id string, avg float64, count int) error
}

func (m *mockRatings) UpdateRating(ctx context.Context, id string, avg float64, count int) error {
	if m.updateRatingFn != nil {
		return m.updateRatingFn(ctx, id, avg, count)
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *mockRepo, *mockRatings) {
	t.Helper()
	mr := &mockRepo{}
	mw := &mockRatings{}
	svc := New(mr, mw)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	}
	return svc, mr, mw
}

func ratedReview(t *testing.T, id string, rating int) domain.Review {
	t.Helper()
	return domain.ReconstructReview(
		id, testRestaurantID, "ana",
		rating, "", nil,
		time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	)
}

const testRestaurantID = "4b5aaed1-8a40-4f2e-9c96-3b4f6f6e2a01"
