// Package auth contains the sign-in business logic: credential checks,
// session token issue and logout via a token revocation list.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ntx-bassclub/clubhub/internal/lib/jwt"
	"github.com/ntx-bassclub/clubhub/internal/lib/password"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository describes the user lookups the auth service needs.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RevocationList stores revoked token ids until they would have expired.
type RevocationList interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Service handles login, logout and token validation.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	revoked  RevocationList
}

// New creates an auth Service.
func New(users UserRepository, jwtMaker jwt.Maker, revoked RevocationList) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		revoked:  revoked,
	}
}

// Login checks the email/password pair and returns a signed session token
// together with the user record.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Name, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the token by putting its jti on the revocation list with
// a TTL matching the token's remaining lifetime.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwtMaker.ParseToken(rawToken)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return s.revoked.Set(ctx, revocationKey(claims.ID), true, ttl)
}

// ValidateToken parses the token, rejects revoked ones and returns the
// embedded claims.
func (s *Service) ValidateToken(ctx context.Context, rawToken string) (*jwt.CustomClaims, error) {
	claims, err := s.jwtMaker.ParseToken(rawToken)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoked.Exists(ctx, revocationKey(claims.ID))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}

func revocationKey(jti string) string {
	return "revoked:" + jti
}
