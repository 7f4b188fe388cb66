package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

// PerUserRateLimit allows perMinute requests per authenticated user, falling back to client IP.
// A non-positive perMinute disables the limit.
func PerUserRateLimit(store mem.LimiterStore, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		limiter := store.Get(key, func() *rate.Limiter { return rate.NewLimiter(every, perMinute) })
		if !limiter.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many plan generation requests, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
