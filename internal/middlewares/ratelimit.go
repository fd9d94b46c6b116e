package middlewares

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/services"
)

// RateLimiter decides whether a request of the given class may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, identifier, class string) (services.Decision, error)
}

// RateLimitMiddleware limits requests per client identifier within class.
// trustedProxies is the number of reverse proxies in front of the service.
// Limiter errors let the request through.
func RateLimitMiddleware(limiter RateLimiter, class string, trustedProxies int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := ClientIdentifier(r, trustedProxies)

			decision, err := limiter.Allow(r.Context(), identifier, class)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable", "class", class, "identifier", identifier, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

			if !decision.Allowed {
				retryAfter := int(math.Ceil(time.Until(decision.ResetAt).Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				logger.Log.Infow("rate limit exceeded", "class", class, "identifier", identifier)
				writeJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":   "Too many requests",
					"resetAt": decision.ResetAt.UTC().Format(time.RFC3339),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIdentifier returns the address of the client as seen by the outermost
// of trustedProxies proxies. Without trusted proxies forwarding headers are
// ignored. With them, the hop they appended to X-Forwarded-For is used, then
// X-Real-IP, then the host part of RemoteAddr.
func ClientIdentifier(r *http.Request, trustedProxies int) string {
	if trustedProxies > 0 {
		if hops := forwardedHops(r.Header.Values("X-Forwarded-For")); len(hops) > 0 {
			return hops[max(len(hops)-trustedProxies, 0)]
		}
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// forwardedHops flattens X-Forwarded-For headers into their non-empty hops.
func forwardedHops(values []string) []string {
	var hops []string
	for _, v := range values {
		for _, hop := range strings.Split(v, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
