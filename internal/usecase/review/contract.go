package review

import (
	"context"

	"github.com/localeats/localeats/internal/domain"
)

// Repository defines the storage contract for review writes and the
// full-set read the aggregator recomputes from.
type Repository interface {
	Insert(ctx context.Context, rev *domain.Review) error
	AllByRestaurant(ctx context.Context, restaurantID string) ([]domain.Review, error)
}

// RatingWriter persists a recomputed rating aggregate onto a restaurant.
type RatingWriter interface {
	UpdateRating(ctx context.Context, id string, avg float64, count int) error
}
