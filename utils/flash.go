package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashKey = "_flashes"

// Flash is a one-shot notice carried in the session until the next render.
type Flash struct {
	Category string // "success" or "danger"
	Message  string
}

func init() {
	// The cookie store gob-encodes session values.
	gob.Register([]Flash{})
}

// AddFlash queues a notice for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	flashes, _ := session.Get(flashKey).([]Flash)
	flashes = append(flashes, Flash{Category: category, Message: message})
	session.Set(flashKey, flashes)
	if err := session.Save(); err != nil {
		ErrorLogger.Printf("Failed to save flash to session: %v", err)
	}
}

// TakeFlashes returns the queued notices and clears them from the session.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	flashes, _ := session.Get(flashKey).([]Flash)
	if len(flashes) > 0 {
		session.Delete(flashKey)
		if err := session.Save(); err != nil {
			ErrorLogger.Printf("Failed to clear flashes from session: %v", err)
		}
	}
	return flashes
}
