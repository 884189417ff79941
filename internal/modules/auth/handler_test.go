package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventstay/internal/database"
	"eventstay/internal/domain"
	"eventstay/internal/pkg/jwt"
	"eventstay/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:auth_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	service := NewService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		jwt.New("test-secret", time.Hour),
	)

	r := gin.New()
	NewHandler(service).RegisterPublicRoutes(r.Group("/"))
	return r, db
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func TestRegister_Endpoint(t *testing.T) {
	r, _ := setupTestRouter(t)
	body := map[string]any{"email": "ana@example.com", "password": "guest123"}

	rr := doJSONRequest(r, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var user UserPublic
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = doJSONRequest(r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "EMAIL_EXISTS", decode(t, rr).Error.Code)

	rr = doJSONRequest(r, http.MethodPost, "/users", map[string]any{"email": "not-an-email", "password": "guest123"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignIn_Endpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	creds := map[string]any{"email": "ana@example.com", "password": "guest123"}
	require.Equal(t, http.StatusCreated, doJSONRequest(r, http.MethodPost, "/users", creds).Code)

	rr := doJSONRequest(r, http.MethodPost, "/auth/sign-in", creds)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var res SignInResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &res))
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ana@example.com", res.User.Email)

	var count int64
	require.NoError(t, db.Model(&domain.Session{}).Where("token = ?", res.Token).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rr = doJSONRequest(r, http.MethodPost, "/auth/sign-in", map[string]any{"email": "ana@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rr).Error.Code)

	rr = doJSONRequest(r, http.MethodPost, "/auth/sign-in", map[string]any{"email": "ghost@example.com", "password": "guest123"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSignIn_BackToBackOpensTwoSessions(t *testing.T) {
	r, db := setupTestRouter(t)
	creds := map[string]any{"email": "ana@example.com", "password": "guest123"}
	require.Equal(t, http.StatusCreated, doJSONRequest(r, http.MethodPost, "/users", creds).Code)

	first := doJSONRequest(r, http.MethodPost, "/auth/sign-in", creds)
	second := doJSONRequest(r, http.MethodPost, "/auth/sign-in", creds)

	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())

	var a, b SignInResponse
	require.NoError(t, json.Unmarshal(decode(t, first).Data, &a))
	require.NoError(t, json.Unmarshal(decode(t, second).Data, &b))
	assert.NotEqual(t, a.Token, b.Token)

	var count int64
	require.NoError(t, db.Model(&domain.Session{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
