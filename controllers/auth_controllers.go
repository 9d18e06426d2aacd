package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/middlewares"
	"github.com/danieltravel/reservation-panel/models"
	"github.com/danieltravel/reservation-panel/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes":    utils.TakeFlashes(c),
		"csrf_token": utils.CSRFToken(c),
	})
}

// Login authenticates a staff user and opens a session. A missing user and
// a wrong password render the same generic message so usernames cannot be
// probed from the form.
func (ac *AuthController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	err := ac.DB.Where("username = ?", username).First(&user).Error
	if err != nil || !user.CheckPassword(password) {
		utils.InfoLogger.Printf("Failed login attempt for username %q", username)
		c.HTML(http.StatusOK, "login.html", gin.H{
			"error":      "Invalid credentials",
			"username":   username,
			"csrf_token": utils.CSRFToken(c),
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middlewares.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		utils.ErrorLogger.Printf("Failed to save session: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.InfoLogger.Printf("User %s logged in", user.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and sends the user back to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.ErrorLogger.Printf("Failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
