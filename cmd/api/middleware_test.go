package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leebrouse/cinelist/internal/data"
)

func TestRateLimiter(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())
	app.config.limiter.enable = true
	app.config.limiter.rps = 1
	app.config.limiter.burst = 2

	router := app.router()

	// the burst allows two requests from one IP, the third is rejected
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestCORSTrustedOrigin(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())
	app.config.cors.trustedOrigins = []string{"https://example.com"}

	router := app.router()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(rr, req)

	assert.Equal(t, "https://example.com", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication(t, data.DefaultSeed())

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil)
	app.recoverPanic(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}
