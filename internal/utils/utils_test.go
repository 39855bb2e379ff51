package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateJWT(42, "secret", time.Hour, "parachain-remit")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(42, 10), claims.Subject)
	assert.Equal(t, "parachain-remit", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT(7, "secret", -time.Minute, "parachain-remit")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestSeedOrRandom(t *testing.T) {
	seed, err := SeedOrRandom(99)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), seed)

	a, err := SeedOrRandom(0)
	require.NoError(t, err)
	b, err := SeedOrRandom(0)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
