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

// SolicitudService is what the controller needs from the solicitud service.
type SolicitudService interface {
	List(page, limit int) (models.PageResult, error)
	Create(req models.SolicitudCreateRequest, idEmpleado int) (*models.SolicitudResponse, error)
	Update(id int, req models.SolicitudUpdateRequest) (*models.SolicitudResponse, error)
	Delete(id int) error
}

type SolicitudController struct {
	service   SolicitudService
	empleados EmpleadoService
}

func NewSolicitudController(service SolicitudService, empleados EmpleadoService) *SolicitudController {
	return &SolicitudController{service: service, empleados: empleados}
}

// GetSolicitudes handles GET requests to list solicitudes with pagination
func (c *SolicitudController) GetSolicitudes(ctx *gin.Context) {
	result, err := c.service.List(queryInt(ctx, "page"), queryInt(ctx, "limit"))
	if err != nil {
		logger.L().Error("Error al obtener solicitudes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CreateSolicitud handles POST requests to create a solicitud. Admins must
// name the target employee; for everyone else the employee is resolved from
// the token, ignoring whatever id the body carries.
func (c *SolicitudController) CreateSolicitud(ctx *gin.Context) {
	var req models.SolicitudCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	var idEmpleado int
	if middleware.CurrentRole(ctx) == models.RoleAdmin {
		if req.IDEmpleado == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "El admin debe especificar un id_empleado"})
			return
		}
		idEmpleado = req.IDEmpleado
	} else {
		empleado, err := c.empleados.GetByUserID(middleware.CurrentUserID(ctx))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "No se encontró empleado asociado al usuario"})
				return
			}
			logger.L().Error("Error al resolver empleado del usuario", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
			return
		}
		idEmpleado = empleado.ID
	}

	solicitud, err := c.service.Create(req, idEmpleado)
	if err != nil {
		logger.L().Error("Error al crear solicitud", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}
	ctx.JSON(http.StatusCreated, solicitud)
}

// UpdateSolicitud handles PUT requests to replace an existing solicitud
func (c *SolicitudController) UpdateSolicitud(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req models.SolicitudUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	solicitud, err := c.service.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
			return
		}
		logger.L().Error("Error al actualizar solicitud", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar solicitud"})
		return
	}
	ctx.JSON(http.StatusOK, solicitud)
}

// DeleteSolicitud handles DELETE requests to remove a solicitud. Only
// admins get past the route middleware, but the role is re-checked here so
// the rule does not depend on wiring order.
func (c *SolicitudController) DeleteSolicitud(ctx *gin.Context) {
	if middleware.CurrentRole(ctx) != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Solo administradores pueden eliminar solicitudes"})
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
			return
		}
		logger.L().Error("Error al eliminar solicitud", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Solicitud eliminada"})
}
