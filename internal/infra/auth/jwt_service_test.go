package auth

import (
	"testing"
	"time"

	"spotter/config"
	"spotter/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	claims, err := svc.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_TokenKindsAreNotInterchangeable(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	accessToken, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	// Signed with different secrets, so cross-verification must fail.
	_, err = svc.VerifyRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = svc.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonHMACSigning(t *testing.T) {
	svc := newTestService(t)

	// alg=none with the access secret's claims shape.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"type": "access",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_BarePayloadRejected(t *testing.T) {
	cfg := newTestConfig()
	svc := newTestService(t)

	// A token whose subject is not a UUID cannot authenticate anyone.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "just-a-string",
		"type": "access",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_HashTokenDeterministic(t *testing.T) {
	svc := newTestService(t)

	h1 := svc.HashToken("some-refresh-token")
	h2 := svc.HashToken("some-refresh-token")
	h3 := svc.HashToken("another-refresh-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // sha256 hex
}
