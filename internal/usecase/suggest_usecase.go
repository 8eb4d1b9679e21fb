package usecase

import "context"

// SuggestUsecase proxies address autocomplete queries from the delivery step
// to the configured provider.
type SuggestUsecase interface {
	// SuggestAddresses returns display strings for the query. Blank queries
	// yield an empty list without hitting the provider.
	SuggestAddresses(ctx context.Context, query string, limit int) ([]string, error)
}
