package middleware

import (
	"net/http"
	"strings"
	"time"

	"wagehire/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
	CtxUserRole = "user_role"
)

// NewToken signs an HS256 token carrying the user's id, name and role.
func NewToken(secret []byte, user *model.User, ttl time.Duration) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
	}).SignedString(secret)
}

func JWTAuth(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		uid, _ := claims["uid"].(string)
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(CtxUserID, uid)
		c.Set(CtxUserName, name)
		c.Set(CtxUserRole, role)

		// re-issue when less than a day of validity remains
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				newToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"uid":  uid,
					"name": name,
					"role": role,
					"exp":  time.Now().Add(ttl).Unix(),
				}).SignedString(secret)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}

// AdminOnly rejects requests whose token does not carry the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRole) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}
