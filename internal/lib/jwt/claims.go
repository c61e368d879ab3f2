// Package jwt implements generation and parsing of session tokens with
// club-specific claim fields.
//
// Maker defines the contract for issuing and validating tokens carrying the
// user id, display name and role. MakerImpl is the HS256 implementation.
package jwt

import (
	"time"
)

// Maker describes issuing and parsing of session tokens.
type Maker interface {
	// GenerateToken issues a signed token for the given user.
	GenerateToken(userUID, name, role string) (string, error)
	// ParseToken validates a token and returns its claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker using a shared secret key and a token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker builds a MakerImpl from the secret key and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
