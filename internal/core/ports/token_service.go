package ports

import (
	"context"
	"time"
)

// TokenClaims is the identity embedded in a bearer token.
type TokenClaims struct {
	UserID   string
	Username string
	IssuedAt time.Time
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(userID, username string) (string, error)
	// Verify checks the signature and expiry and decodes the embedded
	// identity, failing with domain.ErrInvalidToken otherwise.
	Verify(token string) (TokenClaims, error)
}

// TokenRevoker invalidates outstanding tokens for an account, e.g. when the
// account is deleted. Tokens issued before the revocation instant fail at
// the gate until they expire naturally.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}
