package main

import (
	"log"

	"github.com/SGRH/SGRH-Backend/src/config"
	"github.com/SGRH/SGRH-Backend/src/db"
	"github.com/SGRH/SGRH-Backend/src/logger"
	"github.com/SGRH/SGRH-Backend/src/middleware"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/SGRH/SGRH-Backend/src/routes"
	"github.com/SGRH/SGRH-Backend/src/seed"
	"github.com/SGRH/SGRH-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// A missing signing secret is a startup failure, never a request error
	if cfg.JWTSecret == "" {
		log.Fatal("Falta JWT_SECRET en las variables de entorno")
	}

	logger.Init(cfg.Env)
	defer logger.Sync()

	// Database connection
	database, err := db.Connect(cfg.DSN)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(&models.UserModel{}, &models.EmpleadoModel{}, &models.SolicitudModel{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Optional demo data for dev stacks
	if cfg.SeedDemo {
		seed.Seed(database)
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.AllowOrigins))

	// Services setup
	userService := services.NewUserService(database, cfg.JWTSecret)
	empleadoService := services.NewEmpleadoService(database)
	solicitudService := services.NewSolicitudService(database)

	// Routes setup
	api := router.Group("/api")
	routes.SetupAuthRoutes(api, userService)
	routes.SetupEmpleadoRoutes(api, empleadoService, cfg.JWTSecret)
	routes.SetupSolicitudRoutes(api, solicitudService, empleadoService, cfg.JWTSecret)

	if !cfg.IsProduction() {
		routes.SetupTestRoutes(api, services.NewTestService(database))
	}

	// Server run
	log.Printf("Servidor escuchando en http://localhost:%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.Port, err)
	}
}
