// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"studio-console-backend/models"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// Route targets the guard points callers at.
const (
	LoginPath    = "/login"
	OwnerHome    = "/dashboard"
	CustomerHome = "/my"
)

// GenerateJWTSecret returns a fresh random secret (development fallback).
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues an HS256 token carrying the user id and role.
func GenerateToken(userID string, role models.Role, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not set")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// parseToken validates a bearer token and returns the user id and role.
func parseToken(tokenString, secret string) (string, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := models.Role(roleStr)
	if sub == "" || !role.Valid() {
		return "", "", errors.New("invalid token claims")
	}
	return sub, role, nil
}

func bearerToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
		return tokenString[7:]
	}
	return tokenString
}

// RoleHome returns the home path for a role; unauthenticated callers are
// pointed at the login path.
func RoleHome(role models.Role) string {
	switch role {
	case models.RoleOwner:
		return OwnerHome
	case models.RoleCustomer:
		return CustomerHome
	default:
		return LoginPath
	}
}

// AuthMiddleware requires a valid token and stashes the user id and role in
// the gin context. Unauthenticated requests get 401 with a login redirect
// hint, mirroring the client-side navigation guard.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authorization header required",
				"redirect": LoginPath,
			})
			return
		}

		userID, role, err := parseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Invalid token",
				"redirect": LoginPath,
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Mismatches get 403 with the
// caller's own home path as redirect hint.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role.(models.Role) != required {
			actual := models.Role("")
			if exists {
				actual = role.(models.Role)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Insufficient role",
				"redirect": RoleHome(actual),
			})
			return
		}
		c.Next()
	}
}

// RequireGuest rejects authenticated callers on guest-only routes, pointing
// them at their role's home path.
func RequireGuest(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		if _, role, err := parseToken(tokenString, secret); err == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Already authenticated",
				"redirect": RoleHome(role),
			})
			return
		}
		c.Next()
	}
}
