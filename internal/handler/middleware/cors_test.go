//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guesthouse-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preflight(t *testing.T, h gin.HandlerFunc, origin string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(h)
	r.POST("/api/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req, err := http.NewRequest(http.MethodOptions, "/api/bookings", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("success: empty config falls back to defaults", func(t *testing.T) {
		var h gin.HandlerFunc
		require.NotPanics(t, func() { h = NewCORSMiddleware(config.CORSConfig{}) })

		rec := preflight(t, h, "http://localhost:5173")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("success: configured origin with credentials", func(t *testing.T) {
		cfg := config.DefaultCORSConfig()
		cfg.AllowOrigins = []string{"https://dar-el-bahr.tn"}

		rec := preflight(t, NewCORSMiddleware(cfg), "https://dar-el-bahr.tn")
		assert.Equal(t, "https://dar-el-bahr.tn", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("error: unknown origin is refused", func(t *testing.T) {
		rec := preflight(t, NewCORSMiddleware(config.DefaultCORSConfig()), "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORSOptions(t *testing.T) {
	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		opts := corsOptions(config.CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true})
		assert.True(t, opts.AllowAllOrigins)
		assert.False(t, opts.AllowCredentials)
		assert.Empty(t, opts.AllowOrigins)
		require.NoError(t, opts.Validate())
	})

	t.Run("explicit lists are kept", func(t *testing.T) {
		opts := corsOptions(config.CORSConfig{
			AllowOrigins: []string{"https://admin.dar-el-bahr.tn"},
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Authorization"},
			MaxAge:       time.Hour,
		})
		assert.Equal(t, []string{"https://admin.dar-el-bahr.tn"}, opts.AllowOrigins)
		assert.Equal(t, []string{"GET"}, opts.AllowMethods)
		assert.Equal(t, []string{"Authorization"}, opts.AllowHeaders)
		assert.Equal(t, time.Hour, opts.MaxAge)
	})
}
