package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret-key"

func newTestService() *Service {
	return NewService(testSecret, 2*time.Hour, user.NewService(user.NewMemoryRepo()))
}

func TestService_SignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	u, err := svc.Signup(ctx, "alice", "Alice", "hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", u.Password)

	_, err = svc.Signup(ctx, "alice", "Other", "pw")
	assert.ErrorIs(t, err, user.ErrAlreadyExists)

	result, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.UserID)
	assert.Equal(t, "Alice", result.Username)

	claims, err := crypto.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestHTTPHandler_Signup(t *testing.T) {
	handler := NewHTTPHandler(newTestService(), zap.NewNop())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{"created", `{"userid":"alice","username":"Alice","password":"pw"}`, http.StatusCreated, "User created successfully"},
		{"duplicate", `{"userid":"alice","username":"Alice","password":"pw"}`, http.StatusConflict, "User already exists"},
		{"missing password", `{"userid":"bob","username":"Bob"}`, http.StatusBadRequest, "password is required"},
		{"blank username", `{"userid":"bob","username":"  ","password":"pw"}`, http.StatusBadRequest, "username is required"},
		{
			"password over 72 bytes",
			`{"userid":"carol","username":"Carol","password":"` + strings.Repeat("é", 72) + `"}`,
			http.StatusBadRequest,
			"password must be at most 72 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(tt.body))

			handler.Signup(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body["message"])
		})
	}
}

func TestHTTPHandler_Login(t *testing.T) {
	svc := newTestService()
	_, err := svc.Signup(context.Background(), "alice", "Alice", "hunter2")
	require.NoError(t, err)
	handler := NewHTTPHandler(svc, zap.NewNop())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"success", `{"userid":"alice","password":"hunter2"}`, http.StatusOK},
		{"unknown user", `{"userid":"bob","password":"hunter2"}`, http.StatusNotFound},
		{"wrong password", `{"userid":"alice","password":"nope"}`, http.StatusUnauthorized},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))

			handler.Login(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var result LoginResult
				require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, "alice", result.UserID)
				assert.Equal(t, "Alice", result.Username)
			}
		})
	}
}
