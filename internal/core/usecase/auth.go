package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumaiyashah27/caseflow-ai/internal/core/domain"
	"github.com/sumaiyashah27/caseflow-ai/internal/core/ports"
)

// AuthUseCase exchanges credentials for a signed HS256 session token.
type AuthUseCase struct {
	users  ports.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUseCase(users ports.UserRepository, secret string, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthUseCase{users: users, secret: []byte(secret), ttl: ttl}
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsKind(err, domain.ErrNotFound) {
			return nil, domain.WrapError(domain.ErrUnauthorized, "login", errors.New("invalid credentials"))
		}
		return nil, domain.WrapError(domain.ErrStore, "login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.WrapError(domain.ErrUnauthorized, "login", errors.New("invalid credentials"))
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(uc.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &domain.Session{Token: token, User: *user}, nil
}
