package review

import (
	"context"
	"testing"
	"time"

	"github.com/localeats/localeats/internal/db"
	"github.com/localeats/localeats/internal/domain"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn     func(ctx context.Context, key, path string, data []byte) error
	searchListFn  func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
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

func testReview(t *testing.T) domain.Review {
	t.Helper()
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return domain.ReconstructReview(
		"rev-1", "rest-1", "ana",
		5, "great noodles", []string{"https://example.test/p.jpg"},
		created,
	)
}
