// Package suggest implements address autocomplete against a DaData-style
// suggestion endpoint.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"darkstore/config"
	"darkstore/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 5 * time.Second
	defaultLimit   = 5
)

// httpSuggester implements AddressSuggester over a JSON suggestion API.
type httpSuggester struct {
	endpoint   string
	apiKey     string
	limit      int
	httpClient *http.Client
	logger     *slog.Logger
}

// noopSuggester returns no suggestions when the provider is not configured.
// The delivery step then degrades to plain manual address entry.
type noopSuggester struct{}

func (noopSuggester) Suggest(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

// NewHTTPSuggester creates an AddressSuggester from configuration.
func NewHTTPSuggester(cfg *config.Config, logger *slog.Logger) service.AddressSuggester {
	if cfg.Suggest == nil || cfg.Suggest.Endpoint == "" {
		logger.Info("Address suggestion provider not configured, using no-op suggester")

		return noopSuggester{}
	}

	timeout := cfg.Suggest.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := cfg.Suggest.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &httpSuggester{
		endpoint: cfg.Suggest.Endpoint,
		apiKey:   cfg.Suggest.APIKey,
		limit:    limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type suggestRequest struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type suggestResponse struct {
	Suggestions []struct {
		Value string `json:"value"`
	} `json:"suggestions"`
}

// Suggest returns up to limit display strings for the query. The caller's
// context bounds the request; superseded queries get cancelled upstream.
func (s *httpSuggester) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	body, err := json.Marshal(suggestRequest{
		Query: query,
		Count: limit,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Token "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("suggestion provider returned non-success status: %d", resp.StatusCode)
	}

	var suggestResp suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&suggestResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode suggestion response")
	}

	values := make([]string, 0, len(suggestResp.Suggestions))
	for _, suggestion := range suggestResp.Suggestions {
		values = append(values, suggestion.Value)
	}

	return values, nil
}
