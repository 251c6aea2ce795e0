package domain

import "fmt"

// Price levels span budget (1) to premium (4).
const (
	MinPriceLevel = 1
	MaxPriceLevel = 4
)

// Restaurant is the restaurant aggregate (immutable value object).
// ratingAvg and ratingCount are derived from the review set and change only
// through the rating aggregation path.
type Restaurant struct {
	id          string
	name        string
	address     string
	city        string
	cuisine     []string
	dishes      []string
	takeaway    bool
	priceLevel  int
	tags        []string
	photoURL    string
	ratingAvg   float64
	ratingCount int
}

// NewRestaurant validates and creates a Restaurant.
// Used by seeding and administrative inserts; rating fields start at the
// provided snapshot and are recomputed from reviews afterwards.
func NewRestaurant(
	id, name, address, city string,
	cuisine, dishes []string,
	takeaway bool, priceLevel int,
	tags []string, photoURL string,
	ratingAvg float64, ratingCount int,
) (Restaurant, error) {
	if id == "" {
		return Restaurant{}, fmt.Errorf("%w: id is required", ErrInvalidRestaurant)
	}
	if name == "" {
		return Restaurant{}, fmt.Errorf("%w: name is required", ErrInvalidRestaurant)
	}
	if city == "" {
		return Restaurant{}, fmt.Errorf("%w: city is required", ErrInvalidRestaurant)
	}
	if priceLevel < MinPriceLevel || priceLevel > MaxPriceLevel {
		return Restaurant{}, fmt.Errorf(
			"%w: price_level must be between %d and %d, got %d",
			ErrInvalidRestaurant, MinPriceLevel, MaxPriceLevel, priceLevel,
		)
	}
	if ratingAvg < 0 || ratingAvg > 5 {
		return Restaurant{}, fmt.Errorf("%w: rating_avg must be between 0 and 5", ErrInvalidRestaurant)
	}
	if ratingCount < 0 {
		return Restaurant{}, fmt.Errorf("%w: rating_count must not be negative", ErrInvalidRestaurant)
	}

	return Restaurant{
		id:          id,
		name:        name,
		address:     address,
		city:        city,
		cuisine:     cloneStrings(cuisine),
		dishes:      cloneStrings(dishes),
		takeaway:    takeaway,
		priceLevel:  priceLevel,
		tags:        cloneStrings(tags),
		photoURL:    photoURL,
		ratingAvg:   ratingAvg,
		ratingCount: ratingCount,
	}, nil
}

// ReconstructRestaurant creates a Restaurant without validation (storage hydration).
func ReconstructRestaurant(
	id, name, address, city string,
	cuisine, dishes []string,
	takeaway bool, priceLevel int,
	tags []string, photoURL string,
	ratingAvg float64, ratingCount int,
) Restaurant {
	return Restaurant{
		id: id, name: name, address: address, city: city,
		cuisine: cuisine, dishes: dishes,
		takeaway: takeaway, priceLevel: priceLevel,
		tags: tags, photoURL: photoURL,
		ratingAvg: ratingAvg, ratingCount: ratingCount,
	}
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() string { return r.id }

// Name returns the restaurant name.
func (r *Restaurant) Name() string { return r.name }

// Address returns the street address.
func (r *Restaurant) Address() string { return r.address }

// City returns the city name.
func (r *Restaurant) City() string { return r.city }

// Cuisine returns the cuisine labels.
func (r *Restaurant) Cuisine() []string { return r.cuisine }

// Dishes returns the signature dish names.
func (r *Restaurant) Dishes() []string { return r.dishes }

// Takeaway reports whether the restaurant offers takeaway.
func (r *Restaurant) Takeaway() bool { return r.takeaway }

// PriceLevel returns the price tier (1=budget .. 4=premium).
func (r *Restaurant) PriceLevel() int { return r.priceLevel }

// Tags returns the descriptor tags.
func (r *Restaurant) Tags() []string { return r.tags }

// PhotoURL returns the hero photo URL (may be empty).
func (r *Restaurant) PhotoURL() string { return r.photoURL }

// RatingAvg returns the derived average rating.
func (r *Restaurant) RatingAvg() float64 { return r.ratingAvg }

// RatingCount returns the derived review count.
func (r *Restaurant) RatingCount() int { return r.ratingCount }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
