package models

type SolicitudModel struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Codigo      string `json:"codigo" gorm:"column:codigo;type:varchar(255);not null"`
	Descripcion string `json:"descripcion" gorm:"column:descripcion;type:text;not null"`
	Resumen     string `json:"resumen" gorm:"column:resumen;type:text;not null"`
	IDEmpleado  int    `json:"id_empleado" gorm:"column:id_empleado;not null"`
}

func (SolicitudModel) TableName() string { return "solicitudes" }

// SolicitudCreateRequest is the create payload. IDEmpleado is only honored
// for admin callers; for everyone else it is resolved from the token.
type SolicitudCreateRequest struct {
	Codigo      string `json:"codigo" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
	Resumen     string `json:"resumen" binding:"required"`
	IDEmpleado  int    `json:"id_empleado"`
}

// SolicitudUpdateRequest replaces every mutable field.
type SolicitudUpdateRequest struct {
	Codigo      string `json:"codigo" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
	Resumen     string `json:"resumen" binding:"required"`
	IDEmpleado  *int   `json:"id_empleado" binding:"required"`
}

// SolicitudResponse enriches a solicitud with the linked employee's name.
type SolicitudResponse struct {
	ID          int         `json:"id"`
	Codigo      string      `json:"codigo"`
	Descripcion string      `json:"descripcion"`
	Resumen     string      `json:"resumen"`
	IDEmpleado  int         `json:"id_empleado"`
	Empleado    EmpleadoRef `json:"empleado"`
}
