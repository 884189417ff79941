package auth

import (
	"context"

	"eventstay/internal/domain"
)

// UserRepository is the part of the user store that auth needs.
// GetByEmail returns (nil, nil) for unknown emails.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
}

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}
