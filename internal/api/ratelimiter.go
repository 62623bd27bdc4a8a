package api

import (
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// healthPath is never throttled so liveness probes keep answering under load.
const healthPath = "/api/health"

type rateLimiter interface {
	Allow() bool
}

// retryHinter is implemented by limiters that can tell a throttled client
// how long to wait.
type retryHinter interface {
	RetryAfterSeconds() int
}

type tokenBucket struct {
	limiter *rate.Limiter
}

func newTokenBucketLimiter(ratePerSecond float64, burst int) rateLimiter {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

func (b *tokenBucket) Allow() bool {
	if b == nil || b.limiter == nil {
		return true
	}
	return b.limiter.Allow()
}

// RetryAfterSeconds is the whole number of seconds until one token refills.
func (b *tokenBucket) RetryAfterSeconds() int {
	if b == nil || b.limiter == nil || b.limiter.Limit() <= 0 {
		return 1
	}
	secs := int(math.Ceil(1 / float64(b.limiter.Limit())))
	if secs < 1 {
		return 1
	}
	return secs
}

func rateLimitMiddleware(logger *zap.Logger, limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath || limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		retry := 1
		if h, ok := limiter.(retryHinter); ok {
			retry = h.RetryAfterSeconds()
		}
		if logger != nil {
			logger.Warn("request throttled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", requestIDFromContext(r.Context())),
			)
		}
		w.Header().Set("Retry-After", strconv.Itoa(retry))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}
