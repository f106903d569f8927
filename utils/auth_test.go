package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-console-backend/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter() *gin.Engine {
	r := gin.New()
	r.POST("/login", RequireGuest(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api", AuthMiddleware(testSecret))
	api.GET("/dashboard", RequireRole(models.RoleOwner), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserID)})
	})
	api.GET("/my", RequireRole(models.RoleCustomer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("u1", models.RoleOwner, "", time.Hour)
	assert.Error(t, err)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), LoginPath)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", models.RoleOwner, "other-secret", time.Hour)
	require.NoError(t, err)

	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsMatching(t *testing.T) {
	token, err := GenerateToken("owner-1", models.RoleOwner, testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner-1")
}

func TestRequireRole_RejectsMismatchWithHomeRedirect(t *testing.T) {
	token, err := GenerateToken("cust-1", models.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), CustomerHome)
}

func TestRequireGuest(t *testing.T) {
	r := guardedRouter()

	// anonymous callers pass
	w := doRequest(r, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// authenticated callers are pointed at their role home
	token, err := GenerateToken("owner-1", models.RoleOwner, testSecret, time.Hour)
	require.NoError(t, err)
	w = doRequest(r, http.MethodPost, "/login", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), OwnerHome)
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, OwnerHome, RoleHome(models.RoleOwner))
	assert.Equal(t, CustomerHome, RoleHome(models.RoleCustomer))
	assert.Equal(t, LoginPath, RoleHome(""))
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken("u1", models.RoleOwner, testSecret, -time.Minute)
	require.NoError(t, err)

	w := doRequest(guardedRouter(), http.MethodGet, "/api/dashboard", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
