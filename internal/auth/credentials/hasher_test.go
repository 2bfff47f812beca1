package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery"))
	assert.Error(t, VerifyPassword(hash, "wrong password"))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

func TestHashPassword_SaltedPerPassword(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt must salt each hash")
	assert.NoError(t, VerifyPassword(h1, "same-password"))
	assert.NoError(t, VerifyPassword(h2, "same-password"))
}
