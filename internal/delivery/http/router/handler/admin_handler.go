package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"darkstore/internal/delivery/http/response"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the management panel. Everything except Login sits
// behind the admin session middleware.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// LoginRequest represents the request body for the panel login.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// UpdateOrderStatusRequest represents the request body for an order status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Login handles panel authentication.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.adminUC.Login(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Logout exists for symmetry with Login. Sessions are stateless tokens, the
// client discards its copy and the token lapses at its expiry.
func (h *AdminHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logged out")
}

// GetDashboard handles loading orders, messages and products in one call.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.adminUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// UpdateOrderStatus handles an order status change.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.adminUC.UpdateOrderStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order status updated"}, "Order status updated")
}

// DeleteOrder handles permanent order removal.
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.adminUC.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order deleted"}, "Order deleted")
}

// DeleteMessage handles permanent contact message removal.
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.adminUC.DeleteMessage(c.Request().Context(), messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message deleted"}, "Message deleted")
}

// CreateProduct handles adding a catalog item.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles replacing a catalog item's editable fields.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), productID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// GetStatistics handles the tracking aggregate report. The period defaults
// to the last 30 days; "days" sets the window length, "from"/"to" pin exact
// bounds.
func (h *AdminHandler) GetStatistics(c echo.Context) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.QueryParam("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid 'days' value")
		}
		from = to.AddDate(0, 0, -days)
	}
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid 'from' timestamp")
		}
		from = parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid 'to' timestamp")
		}
		to = parsed
	}

	stats, err := h.adminUC.GetStatistics(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
