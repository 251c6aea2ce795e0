package review

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/localeats/localeats/internal/db"
	"github.com/localeats/localeats/internal/domain"
)

// reviewDoc is the stored JSON shape of a review. CreatedAt is unix
// milliseconds so the index can sort on it as a numeric field.
type reviewDoc struct {
	RestaurantID string   `json:"restaurant_id"`
	Author       string   `json:"author"`
	Rating       int      `json:"rating"`
	Comment      string   `json:"comment"`
	Photos       []string `json:"photos"`
	CreatedAt    int64    `json:"created_at"`
}

func docFromReview(r *domain.Review) reviewDoc {
	return reviewDoc{
		RestaurantID: r.RestaurantID(),
		Author:       r.Author(),
		Rating:       r.Rating(),
		Comment:      r.Comment(),
		Photos:       r.Photos(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
	}
}

func (d *reviewDoc) toReview(id string) domain.Review {
	return domain.ReconstructReview(
		id, d.RestaurantID, d.Author,
		d.Rating, d.Comment, d.Photos,
		time.UnixMilli(d.CreatedAt).UTC(),
	)
}

// parseEntries decodes FT.SEARCH hits returned with RETURN 1 $, where the "$"
// field carries the whole document. Malformed hits are skipped.
func parseEntries(sr *db.SearchResult) []domain.Review {
	out := make([]domain.Review, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		payload, ok := e.Fields["$"]
		if !ok {
			continue
		}

		var doc reviewDoc
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			continue
		}

		id := strings.TrimPrefix(e.Key, keyPrefix)
		out = append(out, doc.toReview(id))
	}
	return out
}
