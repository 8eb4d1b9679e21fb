package service

import "context"

// AddressSuggester looks up free-text address queries against an external
// geocoding provider and returns display strings. Callers cancel the context
// when a newer query supersedes an in-flight one; only the latest result is
// ever applied.
type AddressSuggester interface {
	// Suggest returns up to limit display strings for the query.
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}
