package controllers

import (
	"net/http"
	"time"

	"github.com/SGRH/SGRH-Backend/src/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestService is what the controller needs from the connectivity probe.
type TestService interface {
	DBTime() (time.Time, error)
}

type TestController struct {
	service TestService
}

func NewTestController(service TestService) *TestController {
	return &TestController{service: service}
}

// GetTestDB handles GET requests to check database connectivity
func (c *TestController) GetTestDB(ctx *gin.Context) {
	now, err := c.service.DBTime()
	if err != nil {
		logger.L().Error("Error en test-db", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error al conectar con la base de datos"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "dbTime": now})
}
