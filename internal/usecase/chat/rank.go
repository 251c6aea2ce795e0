package chat

import (
	"sort"
	"strings"

	"github.com/localeats/localeats/internal/domain"
)

// guidanceAnswer is the fixed summary for a zero-candidate search.
const guidanceAnswer = "I couldn't find an exact match. " +
	"Try mentioning a cuisine, dish, price range (cheap/fancy), or city."

// rank sorts candidates by average rating descending (stable, ties keep the
// incoming order) and composes the summary sentence from the top names. The
// full sorted list is returned, not just the highlighted subset.
func rank(candidates []domain.Restaurant, city string, highlights int) Result {
	if len(candidates) == 0 {
		return Result{Answer: guidanceAnswer, Restaurants: []domain.Restaurant{}}
	}

	ranked := make([]domain.Restaurant, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RatingAvg() > ranked[j].RatingAvg()
	})

	top := highlights
	if top > len(ranked) {
		top = len(ranked)
	}
	names := make([]string, top)
	for i := 0; i < top; i++ {
		names[i] = ranked[i].Name()
	}

	var b strings.Builder
	b.WriteString("Top picks")
	if city != "" {
		b.WriteString(" in ")
		b.WriteString(city)
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(". Tap a card to see details and reviews.")

	return Result{Answer: b.String(), Restaurants: ranked}
}
