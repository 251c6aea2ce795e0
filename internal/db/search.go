package db

import "github.com/localeats/localeats/internal/domain/search/filter"

// FilterQuery is the input for structured predicate search.
type FilterQuery struct {
	IndexName    string
	Filters      filter.Expression
	Limit        int
	ReturnFields []string
}

// SubstringQuery is the input for case-insensitive substring search: any of
// Fields containing Text matches (logical OR across fields).
type SubstringQuery struct {
	IndexName    string
	Text         string
	Fields       []string
	Limit        int
	ReturnFields []string
}

// ListQuery is the input for listing with an optional predicate, optional
// sorting, and offset pagination. An empty expression lists every document.
type ListQuery struct {
	IndexName    string
	Filters      filter.Expression
	Offset       int
	Limit        int
	SortBy       string // empty = store-defined order
	SortDesc     bool
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
