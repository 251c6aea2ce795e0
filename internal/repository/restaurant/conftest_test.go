package restaurant

import (
	"context"
	"testing"

	"github.com/localeats/localeats/internal/db"
	"github.com/localeats/localeats/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn         func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn         func(ctx context.Context, key string, paths ...string) ([]byte, error)
	searchFilterFn    func(ctx context.Context, q *db.FilterQuery) (*db.SearchResult, error)
	searchSubstringFn func(ctx context.Context, q *db.SubstringQuery) (*db.SearchResult, error)
	searchCountFn     func(ctx context.Context, index, query string) (int, error)
	createIndexFn     func(ctx context.Context, def *db.IndexDefinition) error
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) SearchFilter(ctx context.Context, q *db.FilterQuery) (*db.SearchResult, error) {
	if m.searchFilterFn != nil {
		return m.searchFilterFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchSubstring(ctx context.Context, q *db.SubstringQuery) (*db.SearchResult, error) {
	if m.searchSubstringFn != nil {
		return m.searchSubstringFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testRestaurant(t *testing.T) domain.Restaurant {
	t.Helper()
	return domain.ReconstructRestaurant(
		"rest-1", "Neon Noodles", "12 Canal St", "amsterdam",
		[]string{"asian", "noodles"}, []string{"ramen", "pad thai"},
		true, 2,
		[]string{"late-night", "spicy"}, "https://example.test/noodles.jpg",
		4.5, 2,
	)
}
