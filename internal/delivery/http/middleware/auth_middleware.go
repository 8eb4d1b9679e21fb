package middleware

import (
	"net/http"
	"strings"

	"darkstore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates the admin panel routes behind the session token
// issued at login.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireAdmin validates the bearer token before letting the request through.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		if err := m.tokenSvc.ValidateAdminToken(tokenString); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired session token"})
		}

		return next(c)
	}
}
