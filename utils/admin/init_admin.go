package main

import (
	"log"
	"os"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/config"
	"github.com/SGRH/SGRH-Backend/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Bootstraps the first admin account. Intended to run once against a fresh
// database: go run ./utils/admin
func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@rrhh.local")
	password := envOr("ADMIN_PASSWORD", "admin123")

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists", username)
		return
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User %q created", username)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
