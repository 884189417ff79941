package auth

import (
	"context"
	"errors"
	"testing"

	"eventstay/internal/domain"
	"eventstay/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	users := new(mockUserRepo)
	service := NewService(users, new(mockSessionRepo), new(mockJWT))

	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 5
	}).Return(nil)

	user, err := service.Register(context.Background(), RegisterRequest{Email: "new@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	service := NewService(users, new(mockSessionRepo), new(mockJWT))
	users.On("GetByEmail", mock.Anything, "dup@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.Register(context.Background(), RegisterRequest{Email: "dup@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmailRace(t *testing.T) {
	users := new(mockUserRepo)
	service := NewService(users, new(mockSessionRepo), new(mockJWT))
	users.On("GetByEmail", mock.Anything, "dup@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := service.Register(context.Background(), RegisterRequest{Email: "dup@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignIn_Success(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	jwt := new(mockJWT)
	service := NewService(users, sessions, jwt)

	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           3,
		Email:        "ana@example.com",
		PasswordHash: hashed(t, "guest123"),
	}, nil)
	jwt.On("GenerateToken", int64(3)).Return("signed-token", nil)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.UserID == 3 && s.Token == "signed-token"
	})).Return(nil)

	res, err := service.SignIn(context.Background(), SignInRequest{Email: "ana@example.com", Password: "guest123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Empty(t, res.User.PasswordHash)
	sessions.AssertExpectations(t)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	users := new(mockUserRepo)
	jwt := new(mockJWT)
	service := NewService(users, new(mockSessionRepo), jwt)

	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: 3, PasswordHash: hashed(t, "guest123")}, nil)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := service.SignIn(context.Background(), SignInRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.SignIn(context.Background(), SignInRequest{Email: "ghost@example.com", Password: "guest123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestSignIn_SessionStoreFailure(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	jwt := new(mockJWT)
	service := NewService(users, sessions, jwt)

	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: 3, PasswordHash: hashed(t, "guest123")}, nil)
	jwt.On("GenerateToken", int64(3)).Return("signed-token", nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := service.SignIn(context.Background(), SignInRequest{Email: "ana@example.com", Password: "guest123"})

	assert.EqualError(t, err, "db down")
}
