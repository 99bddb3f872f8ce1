package services

import (
	"errors"
	"strings"

	"github.com/SGRH/SGRH-Backend/src/models"
	"gorm.io/gorm"
)

type EmpleadoService struct {
	db *gorm.DB
}

// NewEmpleadoService creates a new instance of EmpleadoService
func NewEmpleadoService(db *gorm.DB) *EmpleadoService {
	return &EmpleadoService{db: db}
}

// List loads every employee, filters by name substring (case-insensitive,
// empty filter matches everything) and pages the result in memory.
func (s *EmpleadoService) List(nombre string, page, limit int) (models.PageResult, error) {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	var empleados []models.EmpleadoModel
	if err := s.db.Order("id").Find(&empleados).Error; err != nil {
		return models.PageResult{}, err
	}

	needle := strings.ToLower(nombre)
	filtered := make([]models.EmpleadoModel, 0, len(empleados))
	for _, e := range empleados {
		if strings.Contains(strings.ToLower(e.Nombre), needle) {
			filtered = append(filtered, e)
		}
	}

	return Paginate(filtered, page, limit), nil
}

// Create inserts a new employee with no owning user.
func (s *EmpleadoService) Create(req models.EmpleadoRequest) (*models.EmpleadoModel, error) {
	empleado := models.EmpleadoModel{
		Nombre:       req.Nombre,
		FechaIngreso: req.FechaIngreso,
		Salario:      req.Salario,
	}
	if err := s.db.Create(&empleado).Error; err != nil {
		return nil, err
	}
	return &empleado, nil
}

// Update replaces the mutable fields of an existing employee.
func (s *EmpleadoService) Update(id int, req models.EmpleadoRequest) (*models.EmpleadoModel, error) {
	var empleado models.EmpleadoModel
	if err := s.db.First(&empleado, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	empleado.Nombre = req.Nombre
	empleado.FechaIngreso = req.FechaIngreso
	empleado.Salario = req.Salario
	if err := s.db.Save(&empleado).Error; err != nil {
		return nil, err
	}
	return &empleado, nil
}

// Delete removes an employee. Deletion is refused while solicitudes still
// reference it.
func (s *EmpleadoService) Delete(id int) error {
	var empleado models.EmpleadoModel
	if err := s.db.First(&empleado, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.SolicitudModel{}).Where("id_empleado = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmpleadoEnUso
	}

	return s.db.Delete(&models.EmpleadoModel{}, "id = ?", id).Error
}

// GetByUserID resolves the employee record owned by a user.
func (s *EmpleadoService) GetByUserID(userID int) (*models.EmpleadoModel, error) {
	var empleado models.EmpleadoModel
	if err := s.db.Where("id_usuario = ?", userID).First(&empleado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &empleado, nil
}
