package routes

import (
	"github.com/SGRH/SGRH-Backend/src/controllers"
	"github.com/SGRH/SGRH-Backend/src/middleware"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/gin-gonic/gin"
)

func SetupEmpleadoRoutes(api *gin.RouterGroup, service controllers.EmpleadoService, secret string) {
	empleadoController := controllers.NewEmpleadoController(service)

	// Protected routes
	empleados := api.Group("/empleados")
	empleados.Use(middleware.AuthMiddleware(secret))
	{
		empleados.GET("", empleadoController.GetEmpleados)
		empleados.GET("/mi-id", empleadoController.GetMiID)

		// Admin-only routes
		admin := empleados.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("", empleadoController.CreateEmpleado)
			admin.PUT("/:id", empleadoController.UpdateEmpleado)
			admin.DELETE("/:id", empleadoController.DeleteEmpleado)
		}
	}
}
