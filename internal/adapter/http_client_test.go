package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviereview/go-movie-review/models"
)

func newTestClient(t *testing.T, handler http.Handler) APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestHTTPAPIClient_Health(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthResponse{OK: true})
	}))

	require.NoError(t, client.Health(context.Background()))
}

func TestHTTPAPIClient_Register_StoresToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Message: "User registered successfully",
			User:    models.User{UserID: 1, Email: req.Email},
			Token:   "issued.jwt",
		})
	}))

	resp, err := client.Register(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.UserID)
	assert.Equal(t, "issued.jwt", client.Token())
}

func TestHTTPAPIClient_Login_ErrorEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	}))

	_, err := client.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.Empty(t, client.Token())
}

func TestHTTPAPIClient_Me_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer issued.jwt", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserResponse{User: models.User{UserID: 1, Email: "alice@example.com"}})
	}))

	client.SetToken("issued.jwt")

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestHTTPAPIClient_UpdateProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/auth/profile", r.URL.Path)

		var update models.UserUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Theme)
		assert.Equal(t, models.ThemeDark, *update.Theme)

		writeJSON(t, w, http.StatusOK, models.UserResponse{
			Message: "Profile updated successfully",
			User:    models.User{UserID: 1, Theme: *update.Theme},
		})
	}))

	theme := models.ThemeDark
	user, err := client.UpdateProfile(context.Background(), models.UserUpdate{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, user.Theme)
}

func TestHTTPAPIClient_ChangePassword_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
	}))

	err := client.ChangePassword(context.Background(), models.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPAPIClient_Verify(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/verify", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{
			Valid: true,
			User:  models.User{UserID: 1},
		})
	}))

	client.SetToken("issued.jwt")

	user, err := client.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}
