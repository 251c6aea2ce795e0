// Package restaurant persists restaurant records as JSON documents with an
// FT index over the searchable fields.
package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/localeats/localeats/internal/db"
	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

const (
	keyPrefix = domain.KeyPrefix + "restaurant:"
	indexName = keyPrefix + "idx"
)

// substringFields are the index aliases the fallback search scans.
var substringFields = []string{
	filter.FieldName,
	filter.FieldDishes,
	filter.FieldCuisine,
	filter.FieldTags,
}

// store is the consumer interface for restaurant persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	SearchFilter(ctx context.Context, q *db.FilterQuery) (*db.SearchResult, error)
	SearchSubstring(ctx context.Context, q *db.SubstringQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
}

// Repo provides restaurant collection access.
type Repo struct {
	store store
}

// New creates a restaurant repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the restaurant FT index; an existing index is fine.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := db.NewIndex(indexName).OnJSON().Prefix(keyPrefix).
		Tag("$.name").As(filter.FieldName).
		Tag("$.city").As(filter.FieldCity).
		Tag("$.cuisine[*]").As(filter.FieldCuisine).
		Tag("$.dishes[*]").As(filter.FieldDishes).
		Tag("$.tags[*]").As(filter.FieldTags).
		Numeric("$.price_level").As(filter.FieldPriceLevel).
		Tag("$.takeaway").As(filter.FieldTakeaway).
		Numeric("$.rating_avg").As("rating_avg").Sortable().
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create restaurant index: %w", err)
	}
	return nil
}

// Insert stores a new restaurant document.
func (r *Repo) Insert(ctx context.Context, rest *domain.Restaurant) error {
	data, err := json.Marshal(docFromRestaurant(rest))
	if err != nil {
		return fmt.Errorf("marshal restaurant: %w", err)
	}
	if err := r.store.JSONSet(ctx, restaurantKey(rest.ID()), "$", data); err != nil {
		return fmt.Errorf("json.set restaurant %s: %w", rest.ID(), err)
	}
	return nil
}

// Get returns a restaurant by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Restaurant, error) {
	raw, err := r.store.JSONGet(ctx, restaurantKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Restaurant{}, domain.ErrRestaurantNotFound
		}
		return domain.Restaurant{}, fmt.Errorf("json.get restaurant %s: %w", id, err)
	}
	return parseJSONGetResult(id, raw)
}

// Search evaluates a structured predicate, returning at most limit records in
// store order.
func (r *Repo) Search(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error) {
	sr, err := r.store.SearchFilter(ctx, &db.FilterQuery{
		IndexName:    indexName,
		Filters:      expr,
		Limit:        limit,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}
	return parseEntries(sr), nil
}

// SearchSubstring matches restaurants whose name, dishes, cuisine, or tags
// contain the text as a case-insensitive substring (the fallback search).
func (r *Repo) SearchSubstring(ctx context.Context, text string, limit int) ([]domain.Restaurant, error) {
	sr, err := r.store.SearchSubstring(ctx, &db.SubstringQuery{
		IndexName:    indexName,
		Text:         text,
		Fields:       substringFields,
		Limit:        limit,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("substring search restaurants: %w", err)
	}
	return parseEntries(sr), nil
}

// UpdateRating persists a recomputed rating aggregate onto a single
// restaurant document. The read-merge-write sequence is not serialized across
// concurrent writers; the final JSON.SET is a single-key write, so the later
// of two concurrent recomputations wins whole.
func (r *Repo) UpdateRating(ctx context.Context, id string, avg float64, count int) error {
	key := restaurantKey(id)

	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return fmt.Errorf("json.get restaurant %s: %w", id, err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("unmarshal restaurant %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domain.ErrRestaurantNotFound
	}

	current := docs[0]
	current["rating_avg"] = avg
	current["rating_count"] = count

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal restaurant %s: %w", id, err)
	}
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set restaurant %s: %w", id, err)
	}
	return nil
}

// Count returns the number of restaurant documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName, "*")
	if err != nil {
		return 0, fmt.Errorf("count restaurants: %w", err)
	}
	return n, nil
}

func restaurantKey(id string) string {
	return keyPrefix + id
}
