package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackio/fintrack/internal/user"
)

type mockUserService struct {
	users map[string]*user.User
}

func (m *mockUserService) Register(email, login, password string) (*user.User, error) {
	return nil, user.ErrInternalError
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByLoginOrEmail(loginOrEmail string) (*user.User, error) {
	for _, u := range m.users {
		if u.Login == loginOrEmail || u.Email == loginOrEmail {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestService(users map[string]*user.User) *service {
	return &service{
		userService: &mockUserService{users: users},
		jwtManager:  &JWTManager{secret: "test-secret"},
	}
}

func TestJWTAccessTokenMiddleware_InjectsUserID(t *testing.T) {
	svc := newTestService(map[string]*user.User{
		"user-1": {ID: "user-1", Login: "someone"},
	})
	token, err := svc.jwtManager.GenerateAccessJWT("user-1", time.Minute)
	require.NoError(t, err)

	var gotUserID string
	handler := svc.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestJWTAccessTokenMiddleware_MissingHeader(t *testing.T) {
	svc := newTestService(nil)
	handler := svc.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/expense", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAccessTokenMiddleware_BadScheme(t *testing.T) {
	svc := newTestService(nil)
	handler := svc.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAccessTokenMiddleware_UnknownUser(t *testing.T) {
	svc := newTestService(nil)
	token, err := svc.jwtManager.GenerateAccessJWT("ghost", time.Minute)
	require.NoError(t, err)

	handler := svc.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a deleted user")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAccessTokenMiddleware_ExpiredToken(t *testing.T) {
	svc := newTestService(map[string]*user.User{
		"user-1": {ID: "user-1"},
	})
	token, err := svc.jwtManager.GenerateAccessJWT("user-1", -time.Minute)
	require.NoError(t, err)

	handler := svc.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
