package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity claim set carried inside a session token.
// It is produced exclusively by the TokenService at issuance time; claims
// arriving from any other source (headers, body, query) are never trusted.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	UserRole Role   `json:"role,omitempty"`
}

// UserID returns the stable user identifier the token was issued for
func (c *TokenClaims) UserID() string {
	return c.RegisteredClaims.Subject
}

// Role returns the role claim
func (c *TokenClaims) Role() Role {
	return c.UserRole
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Identity is the verified principal handed to downstream handlers.
// Handlers must not accept identity attributes from any other source.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity passes admin gated routes
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IdentityFromClaims maps a verified claim set to the handler facing identity
func IdentityFromClaims(claims *TokenClaims) Identity {
	return Identity{
		UserID: claims.UserID(),
		Email:  claims.Email,
		Role:   claims.Role(),
	}
}
