package service

import "time"

// TokenService defines the interface for issuing and validating admin session
// tokens. The original scheme was a bare session flag; tokens here at least
// expire, while the rest of the placeholder contract (no rotation, no CSRF)
// is kept as-is.
type TokenService interface {
	// GenerateAdminToken creates a signed session token for the admin panel.
	GenerateAdminToken() (string, error)

	// ValidateAdminToken checks a token string and returns an error when it
	// is malformed, expired, or not an admin token.
	ValidateAdminToken(tokenString string) error

	// TokenDuration returns the configured session lifetime.
	TokenDuration() time.Duration
}
