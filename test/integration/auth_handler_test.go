//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Integration(t *testing.T) {
	ctx := GetTestContext()

	t.Run("Register - Success", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/register", map[string]interface{}{
			"username": "alice",
			"email":    "alice@test.com",
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result map[string]interface{}
		require.NoError(t, resp.DecodeJSON(&result))
		user, ok := result["user"].(map[string]interface{})
		require.True(t, ok, "response should carry the created user")
		assert.Equal(t, "alice", user["username"])
		// the password hash never leaves the server
		assert.NotContains(t, user, "password")
	})

	t.Run("Register - Duplicate Email", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/register", map[string]interface{}{
			"username": "alice2",
			"email":    ctx.Owner.Email,
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Register - Duplicate Username", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/register", map[string]interface{}{
			"username": ctx.Owner.Username,
			"email":    "somebody-else@test.com",
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Register - Invalid Email", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/register", map[string]interface{}{
			"username": "bob",
			"email":    "not-an-email",
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Register - Short Password", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/register", map[string]interface{}{
			"username": "bob",
			"email":    "bob@test.com",
			"password": "123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Login - Success", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/login", map[string]interface{}{
			"email":    ctx.Owner.Email,
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]interface{}
		require.NoError(t, resp.DecodeJSON(&result))
		assert.NotEmpty(t, result["accessToken"])
	})

	t.Run("Login - Wrong Password", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/login", map[string]interface{}{
			"email":    ctx.Owner.Email,
			"password": "wrongpassword",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Login - Unknown Email", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.POST("/api/auth/login", map[string]interface{}{
			"email":    "ghost@test.com",
			"password": "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Check - Valid Token", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.OwnerToken)

		resp, err := client.GET("/api/auth/check")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]interface{}
		require.NoError(t, resp.DecodeJSON(&result))
		assert.Equal(t, true, result["authenticated"])
		assert.Equal(t, float64(ctx.Owner.UID), result["user_id"])
	})

	t.Run("Check - No Token", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")

		resp, err := client.GET("/api/auth/check")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
