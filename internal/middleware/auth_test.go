package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/pkg/token"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpireHours: 1,
	}
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(cfg))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{"uid": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Authorization header required", body["error"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	jwt, err := token.GenerateToken(cfg, "uid123", "u@example.edu", "Test User")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "uid123", body["uid"])
}

func TestAuthMiddleware_RawTokenWithoutBearer(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	jwt, err := token.GenerateToken(cfg, "uid123", "u@example.edu", "Test User")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", jwt)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := testConfig()
	other := &config.Config{JWTSecret: "different-secret", JWTExpireHours: 1}
	r := protectedRouter(cfg)

	jwt, err := token.GenerateToken(other, "uid123", "u@example.edu", "Test User")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}
