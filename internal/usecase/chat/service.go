// Package chat turns a free-text restaurant query into a ranked result list
// with a natural-language summary.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
	"github.com/localeats/localeats/internal/domain/search/intent"
	"github.com/localeats/localeats/internal/metrics"
)

// Result is a chat search outcome: a summary sentence plus the full
// candidate list. Ranking only decides which names appear in the summary.
type Result struct {
	Answer      string
	Restaurants []domain.Restaurant
}

// Service handles chat search: interpret, filter, fall back, rank.
type Service struct {
	repo       Repository
	resultCap  int
	highlights int
}

// New creates a chat service. resultCap bounds both search passes;
// highlights is how many top names the summary mentions.
func New(repo Repository, resultCap, highlights int) *Service {
	return &Service{repo: repo, resultCap: resultCap, highlights: highlights}
}

// Search interprets the query, evaluates the structured predicate, and falls
// back to a substring match when the predicate found nothing and the raw
// query is non-empty. Absence of matches is a normal outcome carrying a
// guidance message, never an error.
func (s *Service) Search(ctx context.Context, query, city string) (Result, error) {
	// The summary echoes the city as given, trimmed; matching itself is
	// case-insensitive via the parsed intent.
	city = strings.TrimSpace(city)

	it := intent.Parse(query, city)

	expr, err := filter.FromIntent(it)
	if err != nil {
		return Result{}, fmt.Errorf("build predicate: %w", err)
	}

	candidates, err := s.repo.Search(ctx, expr, s.resultCap)
	if err != nil {
		return Result{}, fmt.Errorf("primary search: %w", err)
	}
	outcome := metrics.SearchOutcomePrimary

	// Fallback runs only on a zero-hit primary pass with a non-empty raw
	// query. A non-empty primary result suppresses it regardless of size.
	raw := strings.TrimSpace(query)
	if len(candidates) == 0 && raw != "" {
		candidates, err = s.repo.SearchSubstring(ctx, raw, s.resultCap)
		if err != nil {
			return Result{}, fmt.Errorf("fallback search: %w", err)
		}
		outcome = metrics.SearchOutcomeFallback
	}

	if len(candidates) == 0 {
		outcome = metrics.SearchOutcomeEmpty
	}
	metrics.ObserveSearchOutcome(outcome)

	return rank(candidates, city, s.highlights), nil
}
