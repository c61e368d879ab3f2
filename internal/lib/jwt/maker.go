package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims holds the user data embedded in a session token.
type CustomClaims struct {
	UserUID              string `json:"uid"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims        // standard claims: ExpiresAt, IssuedAt, ID (jti)
}

// GenerateToken issues an HS256 token with uid, name and role claims.
//
// The token lifetime comes from the maker's TTL. The jti claim is a fresh
// uuid so individual tokens can be revoked on logout.
func (j *MakerImpl) GenerateToken(userUID, name, role string) (string, error) {
	claims := CustomClaims{
		UserUID: userUID,
		Name:    name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken checks the signature and validity of a token and returns
// its CustomClaims.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
