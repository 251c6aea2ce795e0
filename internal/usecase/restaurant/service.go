// Package restaurant handles restaurant lookups, city listings, and demo
// seeding.
package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

// Detail is a restaurant together with its most recent reviews,
// newest first.
type Detail struct {
	Restaurant domain.Restaurant
	Reviews    []domain.Review
}

// Service handles restaurant reads and demo seeding.
type Service struct {
	repo          Repository
	reviews       ReviewReader
	listCap       int
	recentReviews int
}

// New creates a restaurant service. listCap bounds city listings;
// recentReviews is how many reviews the detail view carries.
func New(repo Repository, reviews ReviewReader, listCap, recentReviews int) *Service {
	return &Service{repo: repo, reviews: reviews, listCap: listCap, recentReviews: recentReviews}
}

// Get returns a restaurant with its most recent reviews.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Detail{}, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	rest, err := s.repo.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	revs, err := s.reviews.ListByRestaurant(ctx, id, s.recentReviews)
	if err != nil {
		return Detail{}, fmt.Errorf("list reviews: %w", err)
	}

	return Detail{Restaurant: rest, Reviews: revs}, nil
}

// List returns restaurants, optionally constrained to a city
// (whole-string, case-insensitive).
func (s *Service) List(ctx context.Context, city string) ([]domain.Restaurant, error) {
	var conditions []filter.Condition

	if normalized := strings.ToLower(strings.TrimSpace(city)); normalized != "" {
		c, err := filter.NewMatchAny(filter.FieldCity, normalized)
		if err != nil {
			return nil, fmt.Errorf("city filter: %w", err)
		}
		conditions = append(conditions, c)
	}

	expr, err := filter.NewExpression(conditions)
	if err != nil {
		return nil, fmt.Errorf("build predicate: %w", err)
	}

	out, err := s.repo.Search(ctx, expr, s.listCap)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return out, nil
}

// Seed inserts the demo restaurants into an empty collection. When data
// already exists it does nothing and reports seeded=false.
func (s *Service) Seed(ctx context.Context) ([]string, bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("count restaurants: %w", err)
	}
	if n > 0 {
		return nil, false, nil
	}

	ids := make([]string, 0, len(demoRestaurants))
	for _, d := range demoRestaurants {
		rest, err := domain.NewRestaurant(
			uuid.NewString(), d.name, d.address, d.city,
			d.cuisine, d.dishes,
			d.takeaway, d.priceLevel,
			d.tags, d.photoURL,
			d.ratingAvg, d.ratingCount,
		)
		if err != nil {
			return nil, false, fmt.Errorf("build demo restaurant %q: %w", d.name, err)
		}
		if err := s.repo.Insert(ctx, &rest); err != nil {
			return nil, false, fmt.Errorf("insert demo restaurant %q: %w", d.name, err)
		}
		ids = append(ids, rest.ID())
	}
	return ids, true, nil
}
