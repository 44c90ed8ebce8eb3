package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/api"
)

func TestUserRoutesRequireSelf(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	f.register(t, "jane", "s3cret")
	f.register(t, "bob", "hunter2")

	t.Run("own account is readable", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/users/jane", "jane", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "jane", resp.UserID)
	})

	t.Run("another user's account is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/users/jane", "bob", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("forbidden for update and delete too", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/users/jane", "bob", api.UpdateUserRequest{Password: "pwn"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = f.do(t, http.MethodDelete, "/api/users/jane", "bob", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUserUpdate(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	f.register(t, "jane", "s3cret")

	rec := f.do(t, http.MethodPut, "/api/users/jane", "jane", api.UpdateUserRequest{
		Password:  "newpw",
		FirstName: "Janet",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UserResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Janet", resp.FirstName)

	// The new credential takes effect.
	login := f.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		UserID:   "jane",
		Password: "newpw",
	})
	assert.Equal(t, http.StatusOK, login.Code)

	stale := f.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		UserID:   "jane",
		Password: "s3cret",
	})
	assert.Equal(t, http.StatusUnauthorized, stale.Code)
}

func TestUserDelete(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	f.register(t, "jane", "s3cret")

	rec := f.do(t, http.MethodDelete, "/api/users/jane", "jane", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	got := f.do(t, http.MethodGet, "/api/users/jane", "jane", nil)
	assert.Equal(t, http.StatusNotFound, got.Code)
}
