package auth

import (
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	sellerID := int64(5)
	session := &entity.Session{
		UserID:           "42",
		Email:            "admin@example.com",
		Name:             "Panel Admin",
		Role:             entity.RoleAdmin,
		AdminForSellerID: &sellerID,
	}

	accessToken, refreshToken, err := svc.GenerateTokens(session)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	token, err := svc.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "access", claims["type"])

	restored, err := svc.SessionFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, restored.UserID)
	assert.Equal(t, session.Email, restored.Email)
	assert.Equal(t, entity.RoleAdmin, restored.Role)
	require.NotNil(t, restored.AdminForSellerID)
	assert.Equal(t, sellerID, *restored.AdminForSellerID)
	assert.Nil(t, restored.SellerID)
}

func TestJWTService_RefreshTokenCarriesNoSessionFields(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	session := &entity.Session{UserID: "42", Email: "admin@example.com", Role: entity.RoleAdmin}

	_, refreshToken, err := svc.GenerateTokens(session)
	require.NoError(t, err)

	token, err := svc.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "42", claims["sub"])
	assert.NotContains(t, claims, "role")
	assert.NotContains(t, claims, "email")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	session := &entity.Session{UserID: "1", Role: entity.RoleOwner}
	accessToken, _, err := svc.GenerateTokens(session)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "some-other-secret")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
