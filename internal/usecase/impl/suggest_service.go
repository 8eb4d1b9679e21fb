package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/pkg/errors"
)

// Queries shorter than this never reach the provider; they produce too much
// noise to be useful.
const minQueryLength = 3

// suggestService implements the SuggestUsecase interface.
type suggestService struct {
	suggester service.AddressSuggester
	logger    *slog.Logger
}

// NewSuggestService is the constructor for suggestService.
func NewSuggestService(
	suggester service.AddressSuggester,
	logger *slog.Logger,
) usecase.SuggestUsecase {
	return &suggestService{
		suggester: suggester,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *suggestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuggestAddresses returns display strings for the query.
func (srv *suggestService) SuggestAddresses(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return []string{}, nil
	}

	values, err := srv.suggester.Suggest(ctx, query, limit)
	if err != nil {
		srv.log(ctx).Warn("Address suggestion failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to suggest addresses")
	}

	if values == nil {
		values = []string{}
	}

	return values, nil
}
