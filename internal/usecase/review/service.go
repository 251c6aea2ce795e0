// Package review handles review submission and rating aggregation.
package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/localeats/localeats/internal/domain"
)

// SubmitResult is the outcome of a review submission: the new review id plus
// the recomputed rating aggregate.
type SubmitResult struct {
	ReviewID    string
	RatingAvg   float64
	RatingCount int
}

// Service handles review submission and the rating aggregate recompute.
type Service struct {
	reviews Repository
	ratings RatingWriter
	now     func() time.Time
}

// New creates a review service.
func New(reviews Repository, ratings RatingWriter) *Service {
	return &Service{reviews: reviews, ratings: ratings, now: time.Now}
}

// Submit validates and persists a review, then recomputes the restaurant's
// rating aggregate from the full review set.
//
// The recompute is not transactionally isolated from concurrent submissions
// for the same restaurant: each writer recomputes from the review set it
// observes and the later single-record write wins whole. Accepted race.
func (s *Service) Submit(
	ctx context.Context,
	restaurantID, author string,
	rating int, comment string, photos []string,
) (SubmitResult, error) {
	if _, err := uuid.Parse(restaurantID); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidID, restaurantID)
	}

	rev, err := domain.NewReview(
		uuid.NewString(), restaurantID, author,
		rating, comment, photos,
		s.now().UTC(),
	)
	if err != nil {
		return SubmitResult{}, err
	}

	if err := s.reviews.Insert(ctx, &rev); err != nil {
		return SubmitResult{}, fmt.Errorf("insert review: %w", err)
	}

	avg, count, err := s.recompute(ctx, restaurantID)
	if err != nil {
		return SubmitResult{}, err
	}

	// A vanished restaurant makes the aggregate write a no-op; the review
	// itself is already persisted.
	if err := s.ratings.UpdateRating(ctx, restaurantID, avg, count); err != nil &&
		!errors.Is(err, domain.ErrRestaurantNotFound) {
		return SubmitResult{}, fmt.Errorf("update rating: %w", err)
	}

	return SubmitResult{ReviewID: rev.ID(), RatingAvg: avg, RatingCount: count}, nil
}

// recompute derives the rating aggregate from scratch: count and mean of all
// persisted reviews, the mean rounded to one decimal, 0 for an empty set.
func (s *Service) recompute(ctx context.Context, restaurantID string) (float64, int, error) {
	all, err := s.reviews.AllByRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, 0, fmt.Errorf("list reviews: %w", err)
	}
	if len(all) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for i := range all {
		sum += all[i].Rating()
	}
	// Half-boundary means round to even: mean(5,5,4,3) = 4.25 -> 4.2.
	mean := float64(sum) / float64(len(all))
	return math.RoundToEven(mean*10) / 10, len(all), nil
}
