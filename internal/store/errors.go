// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same normalized email already
	// exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserData is returned when a write is rejected by a schema
	// constraint, e.g. a theme or role value outside the allowed enum.
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
