package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pixelift/pixelift-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resetAt := time.Now().Add(30 * time.Second).Truncate(time.Second)

	tests := []struct {
		name             string
		decision         services.Decision
		err              error
		expectedStatus   int
		expectNextCalled bool
		expectHeaders    bool
	}{
		{
			name:             "Allowed",
			decision:         services.Decision{Allowed: true, Limit: 20, Remaining: 19, ResetAt: resetAt},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectHeaders:    true,
		},
		{
			name:           "Denied",
			decision:       services.Decision{Allowed: false, Limit: 20, Remaining: 0, ResetAt: resetAt},
			expectedStatus: http.StatusTooManyRequests,
			expectHeaders:  true,
		},
		{
			name:             "BackendDown",
			decision:         services.Decision{Allowed: true, Limit: 20, Remaining: 20, ResetAt: resetAt},
			err:              errors.New("connection refused"),
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7", services.ClassImageProcessing).Return(tt.decision, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/api/upscale", nil)
			req.Header.Set("X-Forwarded-For", "198.51.100.250, 203.0.113.7")
			rr := httptest.NewRecorder()

			RateLimitMiddleware(limiter, services.ClassImageProcessing, 1)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectHeaders {
				assert.Equal(t, "20", rr.Header().Get("X-RateLimit-Limit"))
				assert.Equal(t, strconv.Itoa(tt.decision.Remaining), rr.Header().Get("X-RateLimit-Remaining"))
				assert.Equal(t, strconv.FormatInt(resetAt.Unix(), 10), rr.Header().Get("X-RateLimit-Reset"))
			}

			if tt.expectedStatus == http.StatusTooManyRequests {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Too many requests", body["error"])
				assert.Equal(t, resetAt.UTC().Format(time.RFC3339), body["resetAt"])

				retry, err := strconv.Atoi(rr.Header().Get("Retry-After"))
				require.NoError(t, err)
				assert.InDelta(t, 30, retry, 2)
			}
		})
	}
}

func TestRateLimitMiddleware_MemoryLimiter(t *testing.T) {
	limiter := services.NewMemoryRateLimiter(map[string]int{services.ClassAPI: 2}, time.Minute)
	handler := RateLimitMiddleware(limiter, services.ClassAPI, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
		req.RemoteAddr = "198.51.100.4:5123"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddleware_SpoofedForwardedFor(t *testing.T) {
	limiter := services.NewMemoryRateLimiter(map[string]int{services.ClassImageProcessing: 1}, time.Minute)
	handler := RateLimitMiddleware(limiter, services.ClassImageProcessing, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/upscale", nil)
		req.RemoteAddr = "198.51.100.4:5123"
		req.Header.Set("X-Forwarded-For", "203.0.113."+strconv.Itoa(i))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestClientIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		proxies  int
		headers  map[string]string
		remote   string
		expected string
	}{
		{name: "NoProxyIgnoresForwarded", headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "10.1.1.1"}, remote: "192.0.2.1:41234", expected: "192.0.2.1"},
		{name: "OneProxyTakesRightmostHop", proxies: 1, headers: map[string]string{"X-Forwarded-For": " 1.2.3.4 , 203.0.113.7"}, remote: "10.0.0.2:80", expected: "203.0.113.7"},
		{name: "TwoProxies", proxies: 2, headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.7, 10.0.0.5"}, remote: "10.0.0.2:80", expected: "203.0.113.7"},
		{name: "FewerHopsThanProxies", proxies: 3, headers: map[string]string{"X-Forwarded-For": "203.0.113.7"}, remote: "10.0.0.2:80", expected: "203.0.113.7"},
		{name: "RealIPBehindProxy", proxies: 1, headers: map[string]string{"X-Real-IP": "198.51.100.9"}, remote: "10.0.0.2:80", expected: "198.51.100.9"},
		{name: "RemoteAddr", remote: "192.0.2.1:41234", expected: "192.0.2.1"},
		{name: "RemoteAddrWithoutPort", remote: "192.0.2.1", expected: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, ClientIdentifier(req, tt.proxies))
		})
	}
}
