// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"darkstore/internal/delivery/http/middleware"
	"darkstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	ContactHandler   *handler.ContactHandler
	ProfileHandler   *handler.ProfileHandler
	SuggestHandler   *handler.SuggestHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	contactHandler   *handler.ContactHandler
	profileHandler   *handler.ProfileHandler
	suggestHandler   *handler.SuggestHandler
	analyticsHandler *handler.AnalyticsHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		contactHandler:   params.ContactHandler,
		profileHandler:   params.ProfileHandler,
		suggestHandler:   params.SuggestHandler,
		analyticsHandler: params.AnalyticsHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Cart, keyed by the X-Cart-Token header
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Checkout wizard, keyed by the same token as the cart
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.StartCheckout)
		checkoutGroup.GET("", r.checkoutHandler.GetCheckout)
		checkoutGroup.POST("/info", r.checkoutHandler.SubmitInfo)
		checkoutGroup.POST("/delivery", r.checkoutHandler.SubmitDelivery)
		checkoutGroup.POST("/back", r.checkoutHandler.Back)
		checkoutGroup.POST("/submit", r.checkoutHandler.Submit)
		checkoutGroup.POST("/retry", r.checkoutHandler.Retry)
		checkoutGroup.GET("/payment-qr", r.checkoutHandler.PaymentQR)
	}

	// Contact form
	e.POST("/contact", r.contactHandler.SubmitMessage)

	// Profile: order history by email, favorites by token
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("/orders", r.profileHandler.GetOrderHistory)
		profileGroup.GET("/favorites", r.profileHandler.ListFavorites)
		profileGroup.POST("/favorites/:id", r.profileHandler.AddFavorite)
		profileGroup.DELETE("/favorites/:id", r.profileHandler.RemoveFavorite)
	}

	// Address autocomplete for the delivery step
	e.GET("/suggest/address", r.suggestHandler.SuggestAddresses)

	// Tracking events
	e.POST("/analytics/track", r.analyticsHandler.TrackEvent)

	// Admin panel: login is public, everything else requires a session token
	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login)

	adminPanel := adminGroup.Group("")
	adminPanel.Use(r.authMiddleware.RequireAdmin)
	{
		adminPanel.POST("/logout", r.adminHandler.Logout)
		adminPanel.GET("/dashboard", r.adminHandler.GetDashboard)
		adminPanel.GET("/statistics", r.adminHandler.GetStatistics)
		adminPanel.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminPanel.DELETE("/orders/:id", r.adminHandler.DeleteOrder)
		adminPanel.DELETE("/messages/:id", r.adminHandler.DeleteMessage)
		adminPanel.POST("/products", r.adminHandler.CreateProduct)
		adminPanel.PUT("/products/:id", r.adminHandler.UpdateProduct)
	}
}
