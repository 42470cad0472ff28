package jwt

import (
	"testing"
	"time"

	"go-barber-booking/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "jane@example.com", 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "jane@example.com", 3)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "jane@example.com", 1)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:       "different-secret",
		AccessExpiry: 15 * time.Minute,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "jane@example.com", 1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := testService().ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "jane@example.com", 1)
	require.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(userID, "jane@example.com", 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
