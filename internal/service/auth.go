package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/sneakercollection/sneakercollection-go/internal/crypto"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
	"github.com/sneakercollection/sneakercollection-go/internal/repository"
)

// UserFinder is the slice of the user repository the auth service needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService verifies credentials and issues signed tokens. The signing key
// and expiry are explicit constructor parameters; there is no ambient global
// state.
type AuthService struct {
	repo      UserFinder
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserFinder, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Authenticate checks the submitted credentials against the stored record.
// Passwords are plain strings by the system's stated simplification; the
// comparison is at least constant-time. An unknown email is not an error,
// just a failed authentication.
func (s *AuthService) Authenticate(ctx context.Context, login model.UserLoginDTO) (bool, error) {
	user, err := s.repo.GetByEmail(ctx, login.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, &CommonError{Message: err.Error()}
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(user.Email), []byte(login.Email)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(user.Password), []byte(login.Password)) == 1
	return emailMatch && passwordMatch, nil
}

// GenerateToken issues a signed, time-limited token carrying the user's
// email as subject claim.
func (s *AuthService) GenerateToken(email string) (string, error) {
	return crypto.GenerateToken(email, s.jwtSecret, s.jwtExpiry)
}
