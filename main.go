package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/config"
	"github.com/danieltravel/reservation-panel/models"
	"github.com/danieltravel/reservation-panel/router"
	"github.com/danieltravel/reservation-panel/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	if err := seedAdmin(db, cfg); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	// AutoMigrate only adds missing tables and columns, so historical rows
	// survive schema additions.
	err := db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedAdmin creates the bootstrap staff account on first start. Only a
// missing row triggers the insert; any other lookup failure is returned so
// startup stops instead of racing a broken store.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin user: %w", err)
	}

	admin := models.User{Username: cfg.AdminUsername}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	utils.InfoLogger.Printf("Admin user created: %s", admin.Username)
	return nil
}
