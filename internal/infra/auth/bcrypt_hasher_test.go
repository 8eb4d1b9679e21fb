package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("darkstore2024")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "darkstore2024", hash)

	assert.True(t, hasher.Check("darkstore2024", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_Check_InvalidHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_Hash_Unique(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("password")
	require.NoError(t, err)
	second, err := hasher.Hash("password")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}
