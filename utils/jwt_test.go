package utils

import (
	"testing"

	"lenslink/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	config.AppConfig.AccessTokenSecret = "test-access-secret"
	config.AppConfig.RefreshTokenSecret = "test-refresh-secret"
	config.AppConfig.AccessTokenTTLMin = 15
	config.AppConfig.RefreshTokenTTLHrs = 168
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	token, err := GenerateAccessToken("user-123", "bob@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	setTestSecrets(t)

	token, err := GenerateAccessToken("user-123", "bob@example.com")
	require.NoError(t, err)

	config.AppConfig.AccessTokenSecret = "rotated-secret"
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	setTestSecrets(t)

	refresh, err := GenerateRefreshToken("user-123", "bob@example.com")
	require.NoError(t, err)

	_, err = ExtractIDFromToken(refresh)
	assert.Error(t, err, "refresh tokens are signed with a different secret")
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
