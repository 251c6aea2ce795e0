package domain

import (
	"fmt"
	"time"
)

// Rating bounds for a single review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single immutable review of a restaurant.
// Reviews are created once and never updated or deleted.
type Review struct {
	id           string
	restaurantID string
	author       string
	rating       int
	comment      string
	photos       []string
	createdAt    time.Time
}

// NewReview validates and creates a Review.
func NewReview(
	id, restaurantID, author string,
	rating int, comment string, photos []string,
	createdAt time.Time,
) (Review, error) {
	if id == "" {
		return Review{}, fmt.Errorf("%w: id is required", ErrInvalidReview)
	}
	if restaurantID == "" {
		return Review{}, fmt.Errorf("%w: restaurant id is required", ErrInvalidReview)
	}
	if author == "" {
		return Review{}, fmt.Errorf("%w: author name is required", ErrInvalidReview)
	}
	if rating < MinRating || rating > MaxRating {
		return Review{}, fmt.Errorf(
			"%w: rating must be between %d and %d, got %d",
			ErrInvalidReview, MinRating, MaxRating, rating,
		)
	}
	if createdAt.IsZero() {
		return Review{}, fmt.Errorf("%w: creation time is required", ErrInvalidReview)
	}

	return Review{
		id:           id,
		restaurantID: restaurantID,
		author:       author,
		rating:       rating,
		comment:      comment,
		photos:       cloneStrings(photos),
		createdAt:    createdAt,
	}, nil
}

// ReconstructReview creates a Review without validation (storage hydration).
func ReconstructReview(
	id, restaurantID, author string,
	rating int, comment string, photos []string,
	createdAt time.Time,
) Review {
	return Review{
		id: id, restaurantID: restaurantID, author: author,
		rating: rating, comment: comment, photos: photos,
		createdAt: createdAt,
	}
}

// ID returns the review identifier.
func (r *Review) ID() string { return r.id }

// RestaurantID returns the reviewed restaurant's identifier.
func (r *Review) RestaurantID() string { return r.restaurantID }

// Author returns the reviewer display name.
func (r *Review) Author() string { return r.author }

// Rating returns the star rating (1-5).
func (r *Review) Rating() int { return r.rating }

// Comment returns the optional review text.
func (r *Review) Comment() string { return r.comment }

// Photos returns the optional photo URLs.
func (r *Review) Photos() []string { return r.photos }

// CreatedAt returns the creation timestamp (most-recent-first ordering key).
func (r *Review) CreatedAt() time.Time { return r.createdAt }
