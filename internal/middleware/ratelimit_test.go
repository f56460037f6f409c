package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_WritesOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limit, err := RateLimit("2-M", nil)
	require.NoError(t, err)

	router := gin.New()
	router.Use(WritesOnly(limit))
	router.GET("/r", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/w", func(c *gin.Context) { c.Status(http.StatusCreated) })

	call := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, call(http.MethodPost, "/w"))
	assert.Equal(t, http.StatusCreated, call(http.MethodPost, "/w"))
	assert.Equal(t, http.StatusTooManyRequests, call(http.MethodPost, "/w"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, call(http.MethodGet, "/r"))
	}
}

func TestRateLimit_BadRate(t *testing.T) {
	_, err := RateLimit("lots", nil)
	assert.ErrorContains(t, err, "parse rate")
}
