package store

import (
	"context"

	"github.com/moviereview/go-movie-review/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the persistence contract for account records.
// The users table owns the uniqueness constraint on the normalized email;
// a race between two concurrent registrations of the same email is resolved
// by the database unique index, so exactly one CreateUser succeeds.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields (UserID, CreatedAt, defaults).
	// Returns ErrEmailAlreadyExists when the normalized email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its normalized email.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUserFields applies the non-nil fields of update to the account
	// and returns the updated record. Returns ErrUserNotFound when the
	// account does not exist and ErrInvalidUserData when a value violates
	// a schema constraint (e.g. an unknown theme).
	UpdateUserFields(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// UpdateUserPassword replaces the stored password digest and returns
	// the updated record. Returns ErrUserNotFound when the account does
	// not exist.
	UpdateUserPassword(ctx context.Context, id int64, newHash string) (models.User, error)
}
