package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"darkstore/internal/delivery/http/response"
	"darkstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultSuggestLimit caps the suggestion count when the client does not ask
// for a specific number.
const defaultSuggestLimit = 5

// SuggestHandlerParams holds dependencies for SuggestHandler, injected by Fx.
type SuggestHandlerParams struct {
	fx.In

	SuggestUC usecase.SuggestUsecase
	Logger    *slog.Logger
}

// SuggestHandler proxies address autocomplete for the delivery step.
type SuggestHandler struct {
	suggestUC usecase.SuggestUsecase
	logger    *slog.Logger
}

// NewSuggestHandler is the constructor for SuggestHandler.
func NewSuggestHandler(params SuggestHandlerParams) *SuggestHandler {
	return &SuggestHandler{
		suggestUC: params.SuggestUC,
		logger:    params.Logger,
	}
}

// SuggestAddresses handles an address autocomplete query.
func (h *SuggestHandler) SuggestAddresses(c echo.Context) error {
	query := c.QueryParam("query")

	limit := defaultSuggestLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid suggestion limit")
		}
		limit = parsed
	}

	suggestions, err := h.suggestUC.SuggestAddresses(c.Request().Context(), query, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}
