package chat

import (
	"context"
	"testing"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	searchFn          func(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error)
	searchSubstringFn func(ctx context.Context, text string, limit int) ([]domain.Restaurant, error)
}

func (m *mockRepo) Search(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, expr, limit)
	}
	return nil, nil
}

func (m *mockRepo) SearchSubstring(ctx context.Context, text string, limit int) ([]domain.Restaurant, error) {
	if m.searchSubstringFn != nil {
		return m.searchSubstringFn(ctx, text, limit)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	svc := New(mr, 12, 3)
	return svc, mr
}

func namedRestaurant(t *testing.T, id, name string, rating float64) domain.Restaurant {
	t.Helper()
	return domain.ReconstructRestaurant(
		id, name, "", "london",
		nil, nil, false, 2, nil, "",
		rating, 1,
	)
}

func conditionByKey(t *testing.T, expr filter.Expression, key string) filter.Condition {
	t.Helper()
	for _, c := range expr.Conditions() {
		if c.Key() == key {
			return c
		}
	}
	t.Fatalf("no condition for key %q in %+v", key, expr.Conditions())
	return filter.Condition{}
}
