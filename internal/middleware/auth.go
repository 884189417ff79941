package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"eventstay/internal/domain"
	"eventstay/internal/pkg/jwt"
	"eventstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

var ErrNoSession = errors.New("no session for token")

type SessionFinder interface {
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}

// Authenticator turns a bearer token into a trusted user id. The token must
// verify and must also have a live session row.
type Authenticator struct {
	jwt      *jwt.Service
	sessions SessionFinder
}

func NewAuthenticator(jwtService *jwt.Service, sessions SessionFinder) *Authenticator {
	return &Authenticator{jwt: jwtService, sessions: sessions}
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (int64, error) {
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		return 0, err
	}

	session, err := a.sessions.FindByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if session == nil || session.UserID != claims.UserID {
		return 0, ErrNoSession
	}
	return claims.UserID, nil
}

// JWTAuth rejects requests without a valid bearer token and stores the
// caller's id under "user_id".
func JWTAuth(auth *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Invalid Authorization header")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Empty token")
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, jwt.ErrInvalidToken):
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			return
		case errors.Is(err, ErrNoSession):
			response.Abort(c, http.StatusUnauthorized, "SESSION_NOT_FOUND", "No session for given token")
			return
		default:
			_ = c.Error(err)
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
