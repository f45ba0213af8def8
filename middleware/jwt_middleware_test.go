package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lkwun/formbuilder-go/types"
	"github.com/stretchr/testify/assert"
)

func setupJWT(t *testing.T) {
	t.Helper()
	old := jwtKey
	jwtKey = []byte("test-secret")
	t.Cleanup(func() { jwtKey = old })
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken(7, "alice", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestGenerateToken_ZeroTTLHasNoExpiry(t *testing.T) {
	setupJWT(t)

	token, err := GenerateToken(7, "alice", 0)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseToken_Expired(t *testing.T) {
	setupJWT(t)

	// negative ttl backdates the expiry claim
	token, err := GenerateToken(7, "alice", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	setupJWT(t)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	setupJWT(t)
	r := authRouter()

	token, _ := GenerateToken(7, "alice", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	setupJWT(t)
	r := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_BadScheme(t *testing.T) {
	setupJWT(t)
	r := authRouter()

	token, _ := GenerateToken(7, "alice", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	setupJWT(t)
	r := authRouter()

	token, _ := GenerateToken(7, "alice", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
