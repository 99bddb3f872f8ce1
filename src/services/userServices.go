package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/models"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

// NewUserService creates a new instance of UserService. The signing secret
// comes from config, never from the environment at request time.
func NewUserService(db *gorm.DB, secret string) *UserService {
	return &UserService{db: db, secret: secret, tokenTTL: auth.DefaultTTL}
}

// Register creates a user and, for the empleado role, its linked employee
// record (nombre = username, fecha_ingreso = today, salario only when it
// parses as a positive number).
func (s *UserService) Register(req models.RegisterRequest) (models.RegisterResponse, error) {
	if !req.Role.Valid() {
		return models.RegisterResponse{}, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.RegisterResponse{}, err
	}

	user := models.UserModel{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.RegisterResponse{}, ErrDuplicate
		}
		return models.RegisterResponse{}, err
	}

	if req.Role == models.RoleEmpleado {
		empleado := models.EmpleadoModel{
			Nombre:       user.Username,
			FechaIngreso: time.Now().Format("2006-01-02"),
			Salario:      ParseSalario(req.Salario),
			IDUsuario:    &user.Id,
		}
		if err := s.db.Create(&empleado).Error; err != nil {
			return models.RegisterResponse{}, err
		}
	}

	return models.RegisterResponse{ID: user.Id, Username: user.Username, Role: user.Role}, nil
}

// Login checks the credentials and returns a signed token plus the user
// echo. Unknown email and wrong password produce the same error.
func (s *UserService) Login(req models.LoginRequest) (models.LoginResponse, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		return models.LoginResponse{}, result.Error
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	// Empleados without a linked employee record cannot operate.
	if user.Role == models.RoleEmpleado {
		var empleado models.EmpleadoModel
		if err := s.db.Where("id_usuario = ?", user.Id).First(&empleado).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.LoginResponse{}, ErrSinEmpleado
			}
			return models.LoginResponse{}, err
		}
	}

	token, err := auth.IssueToken(s.secret, user.Id, user.Role, s.tokenTTL)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{Token: token, User: user}, nil
}

// ParseSalario coerces the salario field of a registration, which arrives
// as a string from the web form or as a number from older clients. Anything
// that is not a positive number becomes NULL.
func ParseSalario(v any) *float64 {
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err == nil && f > 0 {
			return &f
		}
	case float64:
		if t > 0 {
			f := t
			return &f
		}
	}
	return nil
}
