// Package adapter provides a typed client for the movie-review auth API.
//
// The primary abstraction is [APIClient], which decouples callers (smoke
// tests, CLIs, sibling services) from the REST transport. The package ships
// an HTTP implementation ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/moviereview/go-movie-review/models"
)

// APIClient defines transport-agnostic communication with the auth API.
// Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level failures to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Register and Login call it automatically on
	// success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Health checks the liveness endpoint.
	Health(ctx context.Context) error

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me fetches the authenticated account's current profile.
	Me(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial profile update (name and/or theme).
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)

	// ChangePassword rotates the account password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// Verify asks the server to validate the stored token and returns the
	// fresh account state.
	Verify(ctx context.Context) (models.User, error)
}
