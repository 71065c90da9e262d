// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kolotebe/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// CheckUserOutput reports whether an account exists for an email and whether
// it can sign in with a password. Non-existent accounts yield {false, false}
// rather than an error so the endpoint never leaks a 404.
type CheckUserOutput struct {
	Exists      bool
	HasPassword bool
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CheckUser reports account existence by email.
	CheckUser(ctx context.Context, email string) (*CheckUserOutput, error)

	// CheckRole re-queries the user by email and derives capability flags
	// from the stored role. Callers must not cache the result.
	CheckRole(ctx context.Context, email string) (entity.Capabilities, error)
}
