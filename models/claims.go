package models

import "github.com/golang-jwt/jwt/v5"

// Role is the account role carried inside the bearer token.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// UserClaims is the claim set of the bearer token issued by the backend.
//
// It embeds [jwt.RegisteredClaims] so that the standard "exp" claim is
// validated by the jwt parser; the remaining fields describe the logged-in
// user.
type UserClaims struct {
	// ID is the uid of the logged-in user.
	ID int64 `json:"id"`

	// Name is the account name.
	Name string `json:"name"`

	// Email is optional and may be absent from the token.
	Email *string `json:"email,omitempty"`

	// Phone is optional and may be absent from the token.
	Phone *string `json:"phone,omitempty"`

	// Role is either [RoleUser] or [RoleAdmin].
	Role Role `json:"role"`

	jwt.RegisteredClaims
}
