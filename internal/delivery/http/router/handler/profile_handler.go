package handler

import (
	"log/slog"
	"net/http"
	"net/mail"

	"darkstore/internal/delivery/http/response"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the shopper profile page: order history looked up by
// email and the token-keyed favorites list.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetOrderHistory handles the order history lookup by email.
func (h *ProfileHandler) GetOrderHistory(c echo.Context) error {
	email := c.QueryParam("email")
	if _, err := mail.ParseAddress(email); err != nil {
		return response.BadRequest(c, "INVALID_EMAIL", "Invalid email address")
	}

	orders, err := h.profileUC.GetOrderHistory(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved successfully")
}

// ListFavorites handles reading the favorites list.
func (h *ProfileHandler) ListFavorites(c echo.Context) error {
	products, err := h.profileUC.ListFavorites(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Favorites retrieved successfully")
}

// AddFavorite handles adding a product to the favorites list.
func (h *ProfileHandler) AddFavorite(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.profileUC.AddFavorite(c.Request().Context(), cartToken(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Product added to favorites"}, "Product added to favorites")
}

// RemoveFavorite handles removing a product from the favorites list.
func (h *ProfileHandler) RemoveFavorite(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.profileUC.RemoveFavorite(c.Request().Context(), cartToken(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product removed from favorites"}, "Product removed from favorites")
}
