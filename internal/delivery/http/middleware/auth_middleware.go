package middleware

import (
	"strings"

	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware for handlers to read.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity on
// the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.claimsFromRequest(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid access token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate stores the caller's identity when a valid token is
// present and lets the request through anonymously otherwise. Used by public
// endpoints whose response differs for the owner.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := m.claimsFromRequest(c); ok {
			setIdentity(c, claims)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyEmail, claims.Email)
	c.Set(ContextKeyRole, claims.Role)
}
