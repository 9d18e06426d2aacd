package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds every environment-driven setting the app needs.
type Config struct {
	SecretKey     string
	DBDriver      string // "sqlite" or "mysql"
	DatabaseURL   string
	AdminUsername string
	AdminPassword string
	Port          string
	Testing       bool // TESTING=1 disables CSRF protection and login throttling
}

func Load() *Config {
	return &Config{
		SecretKey:     getenv("SECRET_KEY", "dev-secret"),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DatabaseURL:   getenv("DATABASE_URL", "reservations.db"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		Port:          getenv("PORT", "8080"),
		Testing:       os.Getenv("TESTING") == "1",
	}
}

// InitDB opens the GORM connection for the configured driver.
// SQLite is the default; DB_DRIVER=mysql switches to a DSN in DATABASE_URL
// (the MySQL DSN must carry parseTime=true for the date columns).
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
