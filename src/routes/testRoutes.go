package routes

import (
	"github.com/SGRH/SGRH-Backend/src/controllers"
	"github.com/gin-gonic/gin"
)

// SetupTestRoutes mounts the database connectivity probe. Only wired
// outside production.
func SetupTestRoutes(api *gin.RouterGroup, service controllers.TestService) {
	testController := controllers.NewTestController(service)

	api.GET("/test-db", testController.GetTestDB)
}
