package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chat-client/v2/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, handler http.HandlerFunc) *AuthService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAuthService(newTestClient(t, server.URL), "/api/v1/dj-rest-auth/login/", "/api/v1/dj-rest-auth/registration/")
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dj-rest-auth/login/", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"username": "alice", "password": "secret"}, body)
		w.Write([]byte(`{"key": "abc123"}`))
	})

	resp, err := svc.Login(context.Background(), auth.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "abc123", resp.Key)
}

func TestAuthService_LoginRejected(t *testing.T) {
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"non_field_errors": ["Unable to log in with provided credentials."]}`))
	})

	resp, err := svc.Login(context.Background(), auth.Credentials{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Empty(t, resp.Key)
	assert.Equal(t, "Unable to log in with provided credentials.", resp.NonFieldErrors)
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dj-rest-auth/registration/", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["first_name"])
		assert.Equal(t, "Lovelace", body["last_name"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "pw", body["password"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"key": "xyz"}`))
	})

	resp, err := svc.Register(context.Background(), auth.RegistrationData{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "xyz", resp.Key)
}
