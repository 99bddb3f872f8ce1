package controllers

import (
	"errors"
	"net/http"

	"github.com/SGRH/SGRH-Backend/src/logger"
	"github.com/SGRH/SGRH-Backend/src/models"
	"github.com/SGRH/SGRH-Backend/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserService is what the auth controller needs from the user service.
type UserService interface {
	Register(req models.RegisterRequest) (models.RegisterResponse, error)
	Login(req models.LoginRequest) (models.LoginResponse, error)
}

type AuthController struct {
	service UserService
}

func NewAuthController(service UserService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST requests to create a new user account
func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	resp, err := c.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rol no válido"})
		case errors.Is(err, services.ErrDuplicate):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Usuario o correo ya registrado"})
		default:
			logger.L().Error("Error al registrar usuario", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login handles POST requests to authenticate a user and issue a token
func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son obligatorios"})
		return
	}

	resp, err := c.service.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		case errors.Is(err, services.ErrSinEmpleado):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "No se pudo identificar tu registro de empleado"})
		default:
			logger.L().Error("Error al iniciar sesión", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
