package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles credential-guessing on the login form.
// Allows a short burst, then one attempt every interval across all clients;
// the panel has a handful of staff users, so a global limiter is enough.
func LoginRateLimiter(burst int, interval time.Duration) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(interval), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, "Too many login attempts, please wait a moment.")
			c.Abort()
			return
		}
		c.Next()
	}
}
