package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"darkstore/config"
	"darkstore/internal/domain/service"
)

const defaultSessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil || cfg.Admin.SessionSecret == "" {
		return nil, errors.New("admin session secret must be provided")
	}

	ttl := cfg.Admin.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &jwtService{
		secret: cfg.Admin.SessionSecret,
		ttl:    ttl,
	}, nil
}

// GenerateAdminToken creates a signed session token for the admin panel.
func (s *jwtService) GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",                      // Subject (who the token is for)
		"iat":  time.Now().Unix(),            // Issued At
		"exp":  time.Now().Add(s.ttl).Unix(), // Expiration Time
		"type": "admin_session",              // Type of token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateAdminToken checks a token string and returns an error when it is
// malformed, expired, or not an admin session token.
func (s *jwtService) ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}

	if tokenType, _ := claims["type"].(string); tokenType != "admin_session" {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}

// TokenDuration returns the configured session lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
