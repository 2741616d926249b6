package main

import (
	"log"
	"os"
	"strings"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the default admin account. Run once after migrations:
//
//	go run ./scripts
func main() {
	db := storage.InitializeDB()

	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed_admin: %v", err)
	}
}

func seedAdmin(db *gorm.DB) error {
	appEnv := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	adminEmail := strings.ToLower(strings.TrimSpace(getEnvDefault("ADMIN_EMAIL", "admin@luxehotel.com")))
	adminPassword := getEnvDefault("ADMIN_PASSWORD", "admin123")
	adminName := strings.TrimSpace(getEnvDefault("ADMIN_NAME", "Administrator"))

	if (appEnv == "prod" || appEnv == "production") && adminPassword == "admin123" {
		log.Fatal("ADMIN_PASSWORD cannot be the default value in production")
	}

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("[seed_admin] Admin already exists: %s", adminEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[seed_admin] Admin created: %s", adminEmail)
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
