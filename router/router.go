package router

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/config"
	"github.com/danieltravel/reservation-panel/controllers"
	"github.com/danieltravel/reservation-panel/middlewares"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())

	r.SetFuncMap(template.FuncMap{
		// Optional decimal columns are pointers; nil renders as blank.
		"money": func(v *float64) string {
			if v == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *v)
		},
	})
	r.LoadHTMLGlob(templatesGlob())

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   8 * 60 * 60,
	})
	r.Use(sessions.Sessions("reservation_session", store))

	// TESTING=1 turns off forgery protection so httptest clients can post
	// forms without fetching a token first.
	if !cfg.Testing {
		r.Use(csrf.Middleware(csrf.Options{
			Secret: cfg.SecretKey,
			ErrorFunc: func(c *gin.Context) {
				c.String(http.StatusBadRequest, "CSRF token mismatch")
				c.Abort()
			},
		}))
	}

	authCtrl := controllers.NewAuthController(db)
	resvCtrl := controllers.NewReservationController(db)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", authCtrl.ShowLogin)
	if cfg.Testing {
		r.POST("/login", authCtrl.Login)
	} else {
		r.POST("/login", middlewares.LoginRateLimiter(10, 10*time.Second), authCtrl.Login)
	}

	auth := r.Group("/")
	auth.Use(middlewares.RequireLogin(db))
	{
		auth.GET("/logout", authCtrl.Logout)
		auth.GET("/dashboard", resvCtrl.Dashboard)
		auth.GET("/add", resvCtrl.ShowAdd)
		auth.POST("/add", resvCtrl.Add)
		auth.POST("/export", resvCtrl.Export)
		auth.GET("/voucher/:id", resvCtrl.Voucher)
	}

	return r
}

// templatesGlob locates the template directory whether the process runs
// from the repo root or from a package directory under go test.
func templatesGlob() string {
	for _, dir := range []string{"templates", filepath.Join("..", "templates")} {
		if _, err := os.Stat(dir); err == nil {
			return filepath.Join(dir, "*.html")
		}
	}
	return filepath.Join("templates", "*.html")
}
