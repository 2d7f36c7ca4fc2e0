// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Sentinel errors of the auth service. Handlers map them to HTTP statuses
// with [errors.Is]; error text is what the API returns in its JSON error
// envelope, so messages mirror the public contract.
var (
	ErrInvalidDataProvided = errors.New("email and password are required")
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")

	// ErrInvalidCredentials covers both "unknown email" and "wrong
	// password" so that responses do not reveal which emails are
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
	ErrInvalidTheme     = errors.New("theme must be 'light' or 'dark'")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokenIsExpired        = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("invalid token")
	ErrTokenIsInvalid        = errors.New("authentication error")
)
