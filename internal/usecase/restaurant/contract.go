package restaurant

import (
	"context"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

// Repository defines the storage contract for restaurant reads and seeding.
type Repository interface {
	Get(ctx context.Context, id string) (domain.Restaurant, error)
	Insert(ctx context.Context, rest *domain.Restaurant) error
	Search(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error)
	Count(ctx context.Context) (int, error)
}

// ReviewReader lists a restaurant's most recent reviews for the detail view.
type ReviewReader interface {
	ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error)
}
