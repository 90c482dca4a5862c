package middleware

import (
	"context"
	"net"
	"net/http"

	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// RateLimiter counts a hit for key and reports whether it is over the limit.
type RateLimiter interface {
	IsRateLimited(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles by client IP. Limiter errors let the request through.
func RateLimit(limiter RateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			limited, err := limiter.IsRateLimited(r.Context(), ip)
			if err != nil {
				logger.Warn("Rate limiter unavailable", zap.Error(err), zap.String("ip", ip))
			}
			if limited {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
