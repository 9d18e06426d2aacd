package middlewares

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/models"
)

// SessionUserKey is the session entry holding the authenticated user id.
const SessionUserKey = "user_id"

// RequireLogin guards a route group: requests without an authenticated
// session are redirected to the login page rather than served an error.
// A session pointing at a deleted user is cleared and treated the same.
func RequireLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		rawID := session.Get(SessionUserKey)
		userID, ok := rawID.(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			session.Clear()
			_ = session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}
