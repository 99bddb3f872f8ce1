package routes

import (
	"github.com/SGRH/SGRH-Backend/src/controllers"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(api *gin.RouterGroup, service controllers.UserService) {
	authController := controllers.NewAuthController(service)

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}
}
