package service

import (
	"context"

	"github.com/moviereview/go-movie-review/models"
)

// AuthService is the only component permitted to compute or verify password
// hashes and to mint or validate bearer tokens. Every returned
// [models.User] still carries its PasswordHash; the HTTP layer strips it
// via the sanitization choke point before serialization.
type AuthService interface {
	// Register creates a new account from raw credentials and an optional
	// display name, enforcing the email shape and password length policy.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// Login authenticates raw credentials against the stored digest.
	Login(ctx context.Context, email, password string) (models.User, error)

	// GetUser re-fetches the account by ID. Token claims are never
	// trusted for profile data; verification always reads fresh state.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies a partial profile update (name and/or theme).
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// ChangePassword verifies the current password and rotates the stored
	// digest. Previously issued tokens remain valid until expiry.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// CreateToken issues a signed bearer token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw bearer token and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
