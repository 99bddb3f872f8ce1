package models

type EmpleadoModel struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"column:nombre;type:varchar(255);not null"`
	// Stored and echoed as YYYY-MM-DD; only presence is validated.
	FechaIngreso string   `json:"fecha_ingreso" gorm:"column:fecha_ingreso;type:varchar(10);not null"`
	Salario      *float64 `json:"salario" gorm:"column:salario;type:numeric(12,2)"`
	IDUsuario    *int     `json:"id_usuario" gorm:"column:id_usuario"`
}

func (EmpleadoModel) TableName() string { return "empleados" }

// EmpleadoRequest is the admin create/update payload. Salario is a pointer so
// an explicit zero passes the presence check.
type EmpleadoRequest struct {
	Nombre       string   `json:"nombre" binding:"required"`
	FechaIngreso string   `json:"fecha_ingreso" binding:"required"`
	Salario      *float64 `json:"salario" binding:"required"`
}

// EmpleadoRef is the embedded employee shape on solicitud responses.
type EmpleadoRef struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
