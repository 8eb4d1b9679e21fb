package handler

import (
	"log/slog"
	"net/http"

	"darkstore/internal/delivery/http/response"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the anonymous token-keyed cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
}

// UpdateQuantityRequest represents the request body for setting a line quantity.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// RemoveItemRequest represents the request body for removing a cart line.
type RemoveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
}

// GetCart handles reading the cart snapshot.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles adding one unit of a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), cartToken(c), productID, req.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// UpdateQuantity handles setting a line quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), cartToken(c), productID, req.Size, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart updated")
}

// RemoveItem handles deleting a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), cartToken(c), productID, req.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// ClearCart handles dropping every cart line.
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.ClearCart(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}
