package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/auth"
	"github.com/mzaleska/catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	user *models.User
	err  error
}

func (f *fakeAuthService) Signup(ctx context.Context, name, surname, email, password string) (*models.User, error) {
	return f.user, f.err
}
func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.user, f.err
}

const testSecret = "test-secret"

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
	}{
		{
			name:         "created",
			body:         `{"name":"Jan","surname":"Kowalski","email":"jan@example.com","password":"Str0ng!pass"}`,
			service:      &fakeAuthService{user: &models.User{ID: "u-1", Email: "jan@example.com"}},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "weak password",
			body:         `{"name":"Jan","surname":"Kowalski","email":"jan@example.com","password":"abc"}`,
			service:      &fakeAuthService{err: apperrors.Validation("Password is not strong enough")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "duplicate email",
			body:         `{"name":"Jan","surname":"Kowalski","email":"jan@example.com","password":"Str0ng!pass"}`,
			service:      &fakeAuthService{err: apperrors.Conflict("Email already in use")},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{Service: tt.service, JWTSecret: testSecret, Log: zap.NewNop()}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/user/signup", bytes.NewBufferString(tt.body))
			h.Signup(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAuthHandler_Signup_TokenIsValid(t *testing.T) {
	h := &AuthHandler{
		Service:   &fakeAuthService{user: &models.User{ID: "u-1", Email: "jan@example.com"}},
		JWTSecret: testSecret,
		Log:       zap.NewNop(),
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/user/signup", bytes.NewBufferString(
		`{"name":"Jan","surname":"Kowalski","email":"jan@example.com","password":"Str0ng!pass"}`))
	h.Signup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Email string `json:"email"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "jan@example.com", payload.Email)

	claims, err := auth.ParseToken(testSecret, payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", claims.Email)
	assert.False(t, claims.Admin)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
	}{
		{
			name:         "success",
			body:         `{"email":"jan@example.com","password":"Str0ng!pass"}`,
			service:      &fakeAuthService{user: &models.User{ID: "u-1", Email: "jan@example.com"}},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad credentials",
			body:         `{"email":"jan@example.com","password":"wrong"}`,
			service:      &fakeAuthService{err: apperrors.Auth("Incorrect email or password")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing fields",
			body:         `{}`,
			service:      &fakeAuthService{err: apperrors.Validation("All fields are required")},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{Service: tt.service, JWTSecret: testSecret, Log: zap.NewNop()}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/user/login", bytes.NewBufferString(tt.body))
			h.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "Incorrect email or password")
			}
		})
	}
}
