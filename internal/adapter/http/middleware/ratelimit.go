package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"kalakruti_api/internal/infrastructure/cache"
	"kalakruti_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, client string) (cache.Decision, error)
}

// RateLimit answers 429 once a client exhausts its window. Limiter errors
// let the request through.
func RateLimit(l Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("[ratelimit][middleware] limiter unavailable, allowing request", zap.Error(err))
		}

		c.Header("RateLimit-Limit", strconv.FormatInt(d.Limit, 10))
		c.Header("RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
		c.Header("RateLimit-Reset", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))

		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds()))))
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, please try again later.", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
