package services

import (
	"errors"

	"github.com/SGRH/SGRH-Backend/src/models"
	"gorm.io/gorm"
)

const nombreNoAsignado = "No asignado"

type SolicitudService struct {
	db *gorm.DB
}

// NewSolicitudService creates a new instance of SolicitudService
func NewSolicitudService(db *gorm.DB) *SolicitudService {
	return &SolicitudService{db: db}
}

// List loads every solicitud, enriches each with the linked employee's name
// and pages the result in memory.
func (s *SolicitudService) List(page, limit int) (models.PageResult, error) {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	var solicitudes []models.SolicitudModel
	if err := s.db.Order("id").Find(&solicitudes).Error; err != nil {
		return models.PageResult{}, err
	}

	nombres, err := s.empleadoNombres(solicitudes)
	if err != nil {
		return models.PageResult{}, err
	}

	enriched := make([]models.SolicitudResponse, 0, len(solicitudes))
	for _, sol := range solicitudes {
		enriched = append(enriched, toResponse(sol, nombres[sol.IDEmpleado]))
	}

	return Paginate(enriched, page, limit), nil
}

// Create inserts a solicitud for the given employee. The caller's role
// branch (admin names the employee, empleado is resolved from the token)
// happens in the controller; by the time we get here idEmpleado is final.
func (s *SolicitudService) Create(req models.SolicitudCreateRequest, idEmpleado int) (*models.SolicitudResponse, error) {
	solicitud := models.SolicitudModel{
		Codigo:      req.Codigo,
		Descripcion: req.Descripcion,
		Resumen:     req.Resumen,
		IDEmpleado:  idEmpleado,
	}
	if err := s.db.Create(&solicitud).Error; err != nil {
		return nil, err
	}

	// Second statement, no transaction: an employee deleted in between
	// shows up as "No asignado".
	resp := toResponse(solicitud, s.empleadoNombre(solicitud.IDEmpleado))
	return &resp, nil
}

// Update replaces every field of an existing solicitud.
func (s *SolicitudService) Update(id int, req models.SolicitudUpdateRequest) (*models.SolicitudResponse, error) {
	var solicitud models.SolicitudModel
	if err := s.db.First(&solicitud, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	solicitud.Codigo = req.Codigo
	solicitud.Descripcion = req.Descripcion
	solicitud.Resumen = req.Resumen
	solicitud.IDEmpleado = *req.IDEmpleado
	if err := s.db.Save(&solicitud).Error; err != nil {
		return nil, err
	}

	resp := toResponse(solicitud, s.empleadoNombre(solicitud.IDEmpleado))
	return &resp, nil
}

// Delete removes a solicitud after checking it exists.
func (s *SolicitudService) Delete(id int) error {
	var solicitud models.SolicitudModel
	if err := s.db.First(&solicitud, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&models.SolicitudModel{}, "id = ?", id).Error
}

// empleadoNombre looks up one employee's name, falling back to the
// "No asignado" placeholder when the record is gone.
func (s *SolicitudService) empleadoNombre(id int) string {
	var empleado models.EmpleadoModel
	if err := s.db.Select("id", "nombre").First(&empleado, "id = ?", id).Error; err != nil {
		return nombreNoAsignado
	}
	return empleado.Nombre
}

// empleadoNombres resolves the names for every employee referenced by the
// given solicitudes in one query.
func (s *SolicitudService) empleadoNombres(solicitudes []models.SolicitudModel) (map[int]string, error) {
	ids := make([]int, 0, len(solicitudes))
	seen := make(map[int]bool, len(solicitudes))
	for _, sol := range solicitudes {
		if !seen[sol.IDEmpleado] {
			seen[sol.IDEmpleado] = true
			ids = append(ids, sol.IDEmpleado)
		}
	}
	if len(ids) == 0 {
		return map[int]string{}, nil
	}

	var empleados []models.EmpleadoModel
	if err := s.db.Select("id", "nombre").Where("id IN ?", ids).Find(&empleados).Error; err != nil {
		return nil, err
	}

	nombres := make(map[int]string, len(empleados))
	for _, e := range empleados {
		nombres[e.ID] = e.Nombre
	}
	return nombres, nil
}

func toResponse(sol models.SolicitudModel, nombre string) models.SolicitudResponse {
	if nombre == "" {
		nombre = nombreNoAsignado
	}
	return models.SolicitudResponse{
		ID:          sol.ID,
		Codigo:      sol.Codigo,
		Descripcion: sol.Descripcion,
		Resumen:     sol.Resumen,
		IDEmpleado:  sol.IDEmpleado,
		Empleado:    models.EmpleadoRef{ID: sol.IDEmpleado, Nombre: nombre},
	}
}
