package handler

import (
	"log/slog"
	"net/http"

	"darkstore/internal/delivery/http/response"
	"darkstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the order placement wizard over HTTP. The wizard
// state is keyed by the same token as the cart.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// StartCheckout handles opening a fresh wizard session.
func (h *CheckoutHandler) StartCheckout(c echo.Context) error {
	view, err := h.checkoutUC.StartCheckout(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view, "Checkout started")
}

// GetCheckout handles reading the current wizard state.
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	view, err := h.checkoutUC.GetCheckout(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Checkout retrieved successfully")
}

// SubmitInfo handles the contact step.
func (h *CheckoutHandler) SubmitInfo(c echo.Context) error {
	var req usecase.ContactInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.checkoutUC.SubmitInfo(c.Request().Context(), cartToken(c), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Contact info saved")
}

// SubmitDelivery handles the delivery step.
func (h *CheckoutHandler) SubmitDelivery(c echo.Context) error {
	var req usecase.DeliveryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.checkoutUC.SubmitDelivery(c.Request().Context(), cartToken(c), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Delivery info saved")
}

// Back handles stepping the wizard one stage backward.
func (h *CheckoutHandler) Back(c echo.Context) error {
	view, err := h.checkoutUC.Back(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Step changed")
}

// Submit handles placing the order from the payment step.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	result, err := h.checkoutUC.Submit(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Order placed successfully")
}

// Retry handles returning a failed session to the payment step.
func (h *CheckoutHandler) Retry(c echo.Context) error {
	view, err := h.checkoutUC.Retry(c.Request().Context(), cartToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Checkout reset to payment")
}

// PaymentQR renders the payment confirmation URL as a PNG QR image, for
// shoppers completing payment on another device.
func (h *CheckoutHandler) PaymentQR(c echo.Context) error {
	confirmationURL := c.QueryParam("url")
	if confirmationURL == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing confirmation URL")
	}

	png, err := h.checkoutUC.PaymentQR(confirmationURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
