package restaurant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/localeats/localeats/internal/db"
	"github.com/localeats/localeats/internal/domain"
)

// restaurantDoc is the stored JSON shape of a restaurant.
type restaurantDoc struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Cuisine     []string `json:"cuisine"`
	Dishes      []string `json:"dishes"`
	Takeaway    bool     `json:"takeaway"`
	PriceLevel  int      `json:"price_level"`
	Tags        []string `json:"tags"`
	PhotoURL    string   `json:"photo_url"`
	RatingAvg   float64  `json:"rating_avg"`
	RatingCount int      `json:"rating_count"`
}

func docFromRestaurant(r *domain.Restaurant) restaurantDoc {
	return restaurantDoc{
		Name:        r.Name(),
		Address:     r.Address(),
		City:        r.City(),
		Cuisine:     r.Cuisine(),
		Dishes:      r.Dishes(),
		Takeaway:    r.Takeaway(),
		PriceLevel:  r.PriceLevel(),
		Tags:        r.Tags(),
		PhotoURL:    r.PhotoURL(),
		RatingAvg:   r.RatingAvg(),
		RatingCount: r.RatingCount(),
	}
}

func (d *restaurantDoc) toRestaurant(id string) domain.Restaurant {
	return domain.ReconstructRestaurant(
		id, d.Name, d.Address, d.City,
		d.Cuisine, d.Dishes,
		d.Takeaway, d.PriceLevel,
		d.Tags, d.PhotoURL,
		d.RatingAvg, d.RatingCount,
	)
}

// parseJSONGetResult decodes a JSON.GET "$" payload, which wraps the
// document in a one-element array.
func parseJSONGetResult(id string, raw []byte) (domain.Restaurant, error) {
	var docs []restaurantDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domain.Restaurant{}, fmt.Errorf("unmarshal restaurant %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return docs[0].toRestaurant(id), nil
}

// parseEntries decodes FT.SEARCH hits returned with RETURN 1 $, where the "$"
// field carries the whole document. Malformed hits are skipped.
func parseEntries(sr *db.SearchResult) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		payload, ok := e.Fields["$"]
		if !ok {
			continue
		}

		var doc restaurantDoc
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			continue
		}

		id := strings.TrimPrefix(e.Key, keyPrefix)
		r := doc.toRestaurant(id)
		out = append(out, r)
	}
	return out
}
