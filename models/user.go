package models

import "time"

// Role is the authorization level assigned to an account.
type Role string

// Theme is the UI color scheme preference stored on the account.
type Theme string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"

	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Valid reports whether the theme is one of the known values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User represents an account entity used for authentication and profile
// management. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned by the
	// persistence layer on creation and immutable afterwards.
	UserID int64 `json:"id"`

	// Email is the unique account identifier used during authentication.
	// It is stored lower-cased; all lookups normalize to lower case.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Role is the account's authorization level. Defaults to RoleUser;
	// no API operation mutates it.
	Role Role `json:"role"`

	// Theme is the account's UI theme preference. Defaults to ThemeLight.
	Theme Theme `json:"theme"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy of the user that is safe to return over the
// service boundary: the password digest is cleared. PasswordHash also
// carries a `json:"-"` tag; every handler that returns a user goes through
// this single choke point rather than stripping fields ad hoc.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// UserUpdate carries a partial profile update. Nil fields are left
// unchanged by the persistence layer.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Theme *Theme  `json:"theme,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Theme == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
