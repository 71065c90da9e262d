package handler

import (
	"kolotebe/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated caller's ID. The authentication
// middleware guarantees it is present on protected routes.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// optionalUserID returns the caller's ID when the request carried a valid
// token and uuid.Nil for anonymous requests.
func optionalUserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}

// currentEmail returns the authenticated caller's email claim.
func currentEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(middleware.ContextKeyEmail).(string)

	return email, ok
}
