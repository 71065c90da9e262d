package service

import (
	"time"

	"kolotebe/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity the token service extracts from a valid token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases. Sessions are
// stateless: the platform issues short-lived JWT access tokens only.
type TokenService interface {
	// GenerateToken creates a new access token for a given user.
	GenerateToken(userID uuid.UUID, email string, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
