package auth

import (
	"context"
	"errors"

	"eventstay/internal/domain"
	"eventstay/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service registers users and opens sessions. Every token it issues is
// backed by a sessions row, which the auth middleware requires.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	jwt      tokenIssuer
}

type SignInResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, sessions SessionRepository, jwt tokenIssuer) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: req.Email, PasswordHash: hashedPassword}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, &domain.Session{UserID: user.ID, Token: token}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SignInResult{User: user, Token: token}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
