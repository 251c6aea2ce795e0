// Package review persists review records. Reviews are append-only: the
// repository supports inserts and per-restaurant reads, never updates.
package review

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
	keyPrefix = domain.KeyPrefix + "review:"
	indexName = keyPrefix + "idx"

	fieldRestaurantID = "restaurant_id"
	fieldCreatedAt    = "created_at"

	// aggregationPageSize bounds a single FT.SEARCH page when streaming all
	// reviews of a restaurant for rating aggregation.
	aggregationPageSize = 100
)

// store is the consumer interface for review persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
}

// Repo provides review collection access.
type Repo struct {
	store store
}

// New creates a review repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the review FT index; an existing index is fine.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := db.NewIndex(indexName).OnJSON().Prefix(keyPrefix).
		Tag("$.restaurant_id").As(fieldRestaurantID).
		Numeric("$.rating").As("rating").
		Numeric("$.created_at").As(fieldCreatedAt).Sortable().
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create review index: %w", err)
	}
	return nil
}

// Insert stores a new review document.
func (r *Repo) Insert(ctx context.Context, rev *domain.Review) error {
	data, err := json.Marshal(docFromReview(rev))
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	if err := r.store.JSONSet(ctx, reviewKey(rev.ID()), "$", data); err != nil {
		return fmt.Errorf("json.set review %s: %w", rev.ID(), err)
	}
	return nil
}

// ListByRestaurant returns the restaurant's most recent reviews, newest first,
// at most limit of them.
func (r *Repo) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error) {
	expr, err := restaurantExpr(restaurantID)
	if err != nil {
		return nil, err
	}

	sr, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    indexName,
		Filters:      expr,
		Offset:       0,
		Limit:        limit,
		SortBy:       fieldCreatedAt,
		SortDesc:     true,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", restaurantID, err)
	}
	return parseEntries(sr), nil
}

// AllByRestaurant returns every review of the restaurant, paging through the
// index. Used by rating aggregation, which recomputes from the full set.
func (r *Repo) AllByRestaurant(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	expr, err := restaurantExpr(restaurantID)
	if err != nil {
		return nil, err
	}

	var out []domain.Review
	offset := 0
	for {
		sr, err := r.store.SearchList(ctx, &db.ListQuery{
			IndexName:    indexName,
			Filters:      expr,
			Offset:       offset,
			Limit:        aggregationPageSize,
			ReturnFields: []string{"$"},
		})
		if err != nil {
			return nil, fmt.Errorf("list reviews for %s: %w", restaurantID, err)
		}

		out = append(out, parseEntries(sr)...)

		offset += len(sr.Entries)
		if len(sr.Entries) == 0 || offset >= sr.Total {
			return out, nil
		}
	}
}

func restaurantExpr(restaurantID string) (filter.Expression, error) {
	cond, err := filter.NewMatchAny(fieldRestaurantID, restaurantID)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("restaurant id filter: %w", err)
	}
	return filter.NewExpression([]filter.Condition{cond})
}

func reviewKey(id string) string {
	return keyPrefix + id
}
