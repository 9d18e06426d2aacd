package utils

import (
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"
)

// CSRFToken returns the per-session CSRF token for form templates, or an
// empty string when the CSRF middleware is not installed (TESTING=1).
func CSRFToken(c *gin.Context) string {
	if _, ok := c.Get("csrfSecret"); !ok {
		return ""
	}
	return csrf.GetToken(c)
}
