package domain

import "errors"

// KeyPrefix namespaces every key this service writes to the store.
const KeyPrefix = "localeats:"

var (
	// ErrInvalidID signals a malformed record identifier (not a "missing record").
	ErrInvalidID = errors.New("invalid id")
	// ErrRestaurantNotFound signals a well-formed id with no matching restaurant.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrInvalidRestaurant signals a restaurant that fails domain validation.
	ErrInvalidRestaurant = errors.New("invalid restaurant")
	// ErrInvalidReview signals a review that fails domain validation.
	ErrInvalidReview = errors.New("invalid review")
)
