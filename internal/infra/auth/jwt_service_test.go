package auth

import (
	"testing"
	"time"

	"kolotebe/config"
	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "reader@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_ValidateGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	svc.accessTTL = -time.Minute

	token, err := svc.GenerateToken(uuid.New(), "reader@example.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.GenerateToken(uuid.New(), "reader@example.com", entity.RoleUser)
	require.NoError(t, err)

	other := newTestJWTService(t, time.Hour)
	other.secret = "different-secret"

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidRoleFallsBackToUser(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.GenerateToken(uuid.New(), "reader@example.com", entity.Role("SUPERUSER"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t, 30*time.Minute)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())
}
