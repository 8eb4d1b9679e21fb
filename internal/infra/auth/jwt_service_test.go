package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkstore/config"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Admin = &config.AdminConfig{
		SessionSecret: secret,
		SessionTTL:    ttl,
	}

	return cfg
}

func TestNewJWTService(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		svc, err := NewJWTService(testConfig("test-secret", time.Hour))
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("missing secret", func(t *testing.T) {
		svc, err := NewJWTService(testConfig("", time.Hour))
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("missing admin section", func(t *testing.T) {
		svc, err := NewJWTService(&config.Config{})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("zero TTL falls back to default", func(t *testing.T) {
		svc, err := NewJWTService(testConfig("test-secret", 0))
		require.NoError(t, err)
		assert.Equal(t, defaultSessionTTL, svc.TokenDuration())
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateAdminToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateAdminToken(token))
}

func TestJWTService_ValidateAdminToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateAdminToken()
	require.NoError(t, err)

	assert.Error(t, verifier.ValidateAdminToken(token))
}

func TestJWTService_ValidateAdminToken_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": "admin_session",
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.Error(t, svc.ValidateAdminToken(expired))
}

func TestJWTService_ValidateAdminToken_WrongType(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	}
	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.Error(t, svc.ValidateAdminToken(other))
}

func TestJWTService_ValidateAdminToken_Malformed(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret", time.Hour))
	require.NoError(t, err)

	assert.Error(t, svc.ValidateAdminToken("not-a-token"))
}
