package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/api"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates account", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		rec := f.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
			UserID:    "jane",
			Password:  "s3cret",
			FirstName: "Jane",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "jane", resp.UserID)
		assert.Equal(t, "Jane", resp.FirstName)

		// The credential must never appear on the wire.
		assert.NotContains(t, rec.Body.String(), "s3cret")
	})

	t.Run("duplicate ID conflicts", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		f.register(t, "jane", "s3cret")

		rec := f.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
			UserID:   "jane",
			Password: "other",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		rec := f.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
			UserID: "jane",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials yield a token", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		f.register(t, "jane", "s3cret")

		rec := f.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			UserID:   "jane",
			Password: "s3cret",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "jane", resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong credential is unauthorized", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		f.register(t, "jane", "s3cret")

		rec := f.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			UserID:   "jane",
			Password: "guess",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user gets the same unauthorized answer", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture()
		rec := f.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
			UserID:   "ghost",
			Password: "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddlewareGate(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/notes", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "tok:jane")

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unparseable token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/notes", "jane", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
