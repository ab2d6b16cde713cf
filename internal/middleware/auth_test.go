package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"absign/config"
	"absign/internal/auth"
	"absign/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(cfg *config.JWTConfig) *gin.Engine {
	r := gin.New()
	r.GET("/admin", AuthRequired(cfg), RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	cfg := &config.JWTConfig{AccessSecret: "test-secret", AccessExpiry: time.Hour, Issuer: "absign"}
	r := protectedRouter(cfg)

	token, err := auth.GenerateAccessToken(cfg, 1, "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, c.want, w.Code, c.name)
	}
}

func TestRequireRoleRejectsNonAdmin(t *testing.T) {
	cfg := &config.JWTConfig{AccessSecret: "test-secret", AccessExpiry: time.Hour, Issuer: "absign"}
	r := protectedRouter(cfg)

	token, err := auth.GenerateAccessToken(cfg, 2, "user@example.com", "CUSTOMER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := &config.JWTConfig{AccessSecret: "test-secret", AccessExpiry: -time.Minute, Issuer: "absign"}
	token, err := auth.GenerateAccessToken(cfg, 1, "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	r := protectedRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
