// Package vocab holds the fixed keyword vocabularies the query interpreter
// matches tokens against. The tables are package-level, read-only after
// initialization, and safe for concurrent reads without synchronization.
package vocab

// Price tiers keyed by tier words.
var priceWords = map[string]int{
	"cheap":       1,
	"budget":      1,
	"inexpensive": 1,
	"mid":         2,
	"moderate":    2,
	"affordable":  2,
	"fancy":       4,
	"premium":     4,
	"expensive":   4,
}

// Takeaway preference keyed by service words.
var takeawayWords = map[string]bool{
	"takeaway": true,
	"takeout":  true,
	"to-go":    true,
	"dine-in":  false,
	"eat-in":   false,
}

// Mood/descriptor tags (closed set).
var tagWords = map[string]struct{}{
	"spicy":      {},
	"late-night": {},
	"cozy":       {},
	"colourful":  {},
	"family":     {},
}

// Cuisine words mapped to their normalized cuisine label. Most entries map to
// themselves; dish-type synonyms normalize to the owning cuisine ("taco" is a
// mexican dish, not a cuisine of its own).
var cuisineWords = map[string]string{
	"mexican":    "mexican",
	"taco":       "mexican",
	"tacos":      "mexican",
	"thai":       "thai",
	"asian":      "asian",
	"japanese":   "japanese",
	"ramen":      "ramen",
	"italian":    "italian",
	"pizza":      "pizza",
	"indian":     "indian",
	"burger":     "burger",
	"sushi":      "sushi",
	"korean":     "korean",
	"bbq":        "bbq",
	"vegan":      "vegan",
	"vegetarian": "vegetarian",
	"halal":      "halal",
	"dessert":    "dessert",
	"noodle":     "noodle",
	"chinese":    "chinese",
}

// dishWords is intentionally empty: the dish facet exists in the filter intent
// but no dish keywords ship by default. Populate here to enable it.
var dishWords = map[string]string{}

// PriceLevel returns the price tier for a token.
func PriceLevel(token string) (int, bool) {
	level, ok := priceWords[token]
	return level, ok
}

// Takeaway returns the takeaway preference for a token.
func Takeaway(token string) (bool, bool) {
	pref, ok := takeawayWords[token]
	return pref, ok
}

// IsTag reports whether a token is a known descriptor tag.
func IsTag(token string) bool {
	_, ok := tagWords[token]
	return ok
}

// Cuisine returns the normalized cuisine label for a token.
func Cuisine(token string) (string, bool) {
	label, ok := cuisineWords[token]
	return label, ok
}

// Dish returns the normalized dish label for a token.
func Dish(token string) (string, bool) {
	label, ok := dishWords[token]
	return label, ok
}
