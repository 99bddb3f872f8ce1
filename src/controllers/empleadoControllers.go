package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SGRH/SGRH-Backend/src/logger"
	"github.com/SGRH/SGRH-Backend/src/middleware"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/SGRH/SGRH-Backend/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmpleadoService is what the controllers need from the employee service.
type EmpleadoService interface {
	List(nombre string, page, limit int) (models.PageResult, error)
	Create(req models.EmpleadoRequest) (*models.EmpleadoModel, error)
	Update(id int, req models.EmpleadoRequest) (*models.EmpleadoModel, error)
	Delete(id int) error
	GetByUserID(userID int) (*models.EmpleadoModel, error)
}

type EmpleadoController struct {
	service EmpleadoService
}

func NewEmpleadoController(service EmpleadoService) *EmpleadoController {
	return &EmpleadoController{service: service}
}

// GetEmpleados handles GET requests to list employees with name filter and
// pagination. Out-of-range page/limit values are clamped by the service.
func (c *EmpleadoController) GetEmpleados(ctx *gin.Context) {
	result, err := c.service.List(ctx.Query("nombre"), queryInt(ctx, "page"), queryInt(ctx, "limit"))
	if err != nil {
		logger.L().Error("Error al obtener empleados", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener empleados"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMiID handles GET requests to resolve the employee id linked to the
// authenticated user.
func (c *EmpleadoController) GetMiID(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)
	if userID == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Token inválido: falta userId"})
		return
	}

	empleado, err := c.service.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
			return
		}
		logger.L().Error("Error al obtener ID de empleado", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": empleado.ID})
}

// CreateEmpleado handles POST requests to create a new employee record
func (c *EmpleadoController) CreateEmpleado(ctx *gin.Context) {
	var req models.EmpleadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	empleado, err := c.service.Create(req)
	if err != nil {
		logger.L().Error("Error al crear empleado", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear empleado"})
		return
	}
	ctx.JSON(http.StatusCreated, empleado)
}

// UpdateEmpleado handles PUT requests to update an existing employee record
func (c *EmpleadoController) UpdateEmpleado(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req models.EmpleadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	empleado, err := c.service.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
			return
		}
		logger.L().Error("Error al actualizar empleado", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar empleado"})
		return
	}
	ctx.JSON(http.StatusOK, empleado)
}

// DeleteEmpleado handles DELETE requests to remove an employee record
func (c *EmpleadoController) DeleteEmpleado(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if err := c.service.Delete(id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
		case errors.Is(err, services.ErrEmpleadoEnUso):
			ctx.JSON(http.StatusConflict, gin.H{"error": "El empleado tiene solicitudes asociadas"})
		default:
			logger.L().Error("Error al eliminar empleado", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar empleado"})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Empleado eliminado exitosamente"})
}

// queryInt parses an integer query param, returning 0 when absent or not a
// number so the service clamps it to its default.
func queryInt(ctx *gin.Context, name string) int {
	n, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return n
}
