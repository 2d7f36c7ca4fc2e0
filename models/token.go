// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every bearer token issued by the
// service. On top of the registered claims (iss, sub, iat, exp) it embeds
// the account's email and role so that middleware can authorize requests
// without an extra database read.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account email at issuance time. Informational only;
	// profile reads always re-fetch the account by ID.
	Email string `json:"email"`

	// Role is the account role at issuance time.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and carries the decoded [Claims].
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64. It is populated during generation and validation and avoids
// repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(userIDString, 10, 64)
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
