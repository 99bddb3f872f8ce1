package routes

import (
	"github.com/SGRH/SGRH-Backend/src/controllers"
	"github.com/SGRH/SGRH-Backend/src/middleware"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/gin-gonic/gin"
)

func SetupSolicitudRoutes(api *gin.RouterGroup, service controllers.SolicitudService, empleados controllers.EmpleadoService, secret string) {
	solicitudController := controllers.NewSolicitudController(service, empleados)

	// Protected routes
	solicitudes := api.Group("/solicitudes")
	solicitudes.Use(middleware.AuthMiddleware(secret))
	{
		solicitudes.GET("", solicitudController.GetSolicitudes)
		solicitudes.POST("", solicitudController.CreateSolicitud)
		solicitudes.PUT("/:id", solicitudController.UpdateSolicitud)
		solicitudes.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), solicitudController.DeleteSolicitud)
	}
}
