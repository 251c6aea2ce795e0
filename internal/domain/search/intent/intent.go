// Package intent turns a free-form dining query into a structured filter
// intent by matching tokens against the fixed vocabularies.
package intent

import (
	"strings"

	"github.com/localeats/localeats/internal/domain/search/vocab"
)

// tokenCutset is the punctuation stripped from both ends of each token.
const tokenCutset = ".,!?"

// Intent is the transient structured representation of a query's recognized
// constraints. It is never persisted.
type Intent struct {
	city     string
	cuisines []string
	dishes   []string
	tags     []string
	maxPrice *int
	takeaway *bool
}

// Parse interprets a raw query string plus an optional city.
//
// The query is lower-cased and split on whitespace; each token is trimmed of
// leading/trailing punctuation and tested against every vocabulary
// independently (the tables are disjoint by construction, so at most one
// category matches per token). Price and takeaway are single-valued: the last
// matching token wins, a deliberate simplification ("cheap ... fancy" resolves
// to whichever word appears later). Tag/cuisine/dish matches accumulate in
// first-seen order without duplicates. The city is trimmed and lower-cased so
// the filter matches it whole-string, case-insensitively.
//
// Parse never fails: empty or nonsense queries yield an empty Intent.
func Parse(query, city string) Intent {
	it := Intent{city: strings.ToLower(strings.TrimSpace(city))}

	seenCuisine := make(map[string]struct{})
	seenDish := make(map[string]struct{})
	seenTag := make(map[string]struct{})

	for _, word := range strings.Fields(strings.ToLower(query)) {
		token := strings.Trim(word, tokenCutset)
		if token == "" {
			continue
		}

		if level, ok := vocab.PriceLevel(token); ok {
			l := level
			it.maxPrice = &l
		}
		if pref, ok := vocab.Takeaway(token); ok {
			p := pref
			it.takeaway = &p
		}
		if vocab.IsTag(token) {
			if _, dup := seenTag[token]; !dup {
				seenTag[token] = struct{}{}
				it.tags = append(it.tags, token)
			}
		}
		if label, ok := vocab.Cuisine(token); ok {
			if _, dup := seenCuisine[label]; !dup {
				seenCuisine[label] = struct{}{}
				it.cuisines = append(it.cuisines, label)
			}
		}
		if label, ok := vocab.Dish(token); ok {
			if _, dup := seenDish[label]; !dup {
				seenDish[label] = struct{}{}
				it.dishes = append(it.dishes, label)
			}
		}
	}

	return it
}

// City returns the normalized city constraint ("" when absent).
func (i *Intent) City() string { return i.city }

// Cuisines returns the recognized cuisine labels in first-seen order.
func (i *Intent) Cuisines() []string { return i.cuisines }

// Dishes returns the recognized dish labels in first-seen order.
func (i *Intent) Dishes() []string { return i.dishes }

// Tags returns the recognized descriptor tags in first-seen order.
func (i *Intent) Tags() []string { return i.tags }

// MaxPrice returns the maximum price level (nil when no tier word matched).
func (i *Intent) MaxPrice() *int { return i.maxPrice }

// Takeaway returns the takeaway preference (nil when no service word matched).
func (i *Intent) Takeaway() *bool { return i.takeaway }

// IsEmpty reports whether the intent carries no constraints at all.
func (i *Intent) IsEmpty() bool {
	return i.city == "" &&
		len(i.cuisines) == 0 &&
		len(i.dishes) == 0 &&
		len(i.tags) == 0 &&
		i.maxPrice == nil &&
		i.takeaway == nil
}
