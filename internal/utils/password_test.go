package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"), "hash %q has unexpected prefix", hash)
	assert.Equal(t, 3, strings.Count(hash, "$")+1, "hash should have method$salt$digest shape")
	assert.NotContains(t, hash, "s3cret")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedStoredValue(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"bcrypt:10$salt$digest",
		"pbkdf2:sha256:notanumber$salt$abcdef",
		"pbkdf2:sha256:600000$saltonly",
		"pbkdf2:sha256:600000$salt$not-hex",
	}

	for _, stored := range cases {
		_, err := VerifyPassword(stored, "whatever")
		assert.ErrorIs(t, err, ErrMalformedPasswordHash, "stored=%q", stored)
	}
}
