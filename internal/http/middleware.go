package httpapi

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond the limiter's budget with 429
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "RATE_LIMIT_EXCEEDED")
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(limiter.Limit())))
			w.Header().Set("X-RateLimit-Burst", fmt.Sprintf("%d", limiter.Burst()))
			next.ServeHTTP(w, r)
		})
	}
}
