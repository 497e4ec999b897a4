package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access. SignedString holds the compact
// serialized form (header.payload.signature) ready to be transmitted in the
// Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set, including the
	// marketplace role claim.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim,
	// cached server-side after parsing.
	UserID string `json:"-"`
}

// TokenClaims is the claim set carried by marketplace tokens: the standard
// registered claims plus the principal's role.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the role claim; it drives the per-operation access checks.
	Role Role `json:"role"`
}

// Principal converts the token into the [Principal] consumed by the
// authorization layer.
func (t *Token) Principal() Principal {
	return Principal{
		UserID: t.UserID,
		Role:   t.TokenClaims.Role,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
