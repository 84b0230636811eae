package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wagehire/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

const ttl = 7 * 24 * time.Hour

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", JWTAuth(secret, ttl), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  c.GetString(CtxUserID),
			"role": c.GetString(CtxUserRole),
		})
	})
	r.GET("/admin", JWTAuth(secret, ttl), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := protectedRouter()
	user := &model.User{ID: "u-1", Name: "Test", Role: model.RoleCandidate}
	token, err := NewToken(secret, user, ttl)
	require.NoError(t, err)

	w := get(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
	assert.Contains(t, w.Body.String(), model.RoleCandidate)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	w := get(protectedRouter(), "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	w := get(protectedRouter(), "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	user := &model.User{ID: "u-1", Name: "Test", Role: model.RoleCandidate}
	token, err := NewToken([]byte("other-secret"), user, ttl)
	require.NoError(t, err)
	w := get(protectedRouter(), "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  "u-1",
		"name": "Test",
		"role": model.RoleCandidate,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)
	w := get(protectedRouter(), "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RenewsNearExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  "u-1",
		"name": "Test",
		"role": model.RoleCandidate,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	w := get(protectedRouter(), "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-New-Token"))
}

func TestJWTAuth_FreshTokenNotRenewed(t *testing.T) {
	user := &model.User{ID: "u-1", Name: "Test", Role: model.RoleCandidate}
	token, err := NewToken(secret, user, ttl)
	require.NoError(t, err)

	w := get(protectedRouter(), "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-New-Token"))
}

func TestAdminOnly(t *testing.T) {
	r := protectedRouter()

	candidate, err := NewToken(secret, &model.User{ID: "c-1", Role: model.RoleCandidate}, ttl)
	require.NoError(t, err)
	w := get(r, "/admin", candidate)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, err := NewToken(secret, &model.User{ID: "a-1", Role: model.RoleAdmin}, ttl)
	require.NoError(t, err)
	w = get(r, "/admin", admin)
	assert.Equal(t, http.StatusOK, w.Code)
}
