package chat

import (
	"context"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
)

// Repository defines the storage contract for chat search.
type Repository interface {
	Search(ctx context.Context, expr filter.Expression, limit int) ([]domain.Restaurant, error)
	SearchSubstring(ctx context.Context, text string, limit int) ([]domain.Restaurant, error)
}
