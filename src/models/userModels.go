package models

// Role is the closed set of roles a user can hold. It is assigned at
// registration and never changes afterwards.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmpleado Role = "empleado"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmpleado
}

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Email    string `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
	Role     Role   `json:"role" gorm:"type:varchar(20);not null"`
}

func (UserModel) TableName() string { return "users" }

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required"`
	// The registration form posts salario as a string; older clients send a
	// number. The user service parses it.
	Salario any `json:"salario"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  UserModel `json:"user"`
}
