package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("registro no encontrado")
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrInvalidRole rejects registrations outside the closed role set.
	ErrInvalidRole = errors.New("rol no válido")
	// ErrDuplicate maps the unique constraint on username/email.
	ErrDuplicate = errors.New("usuario o correo ya registrado")
	// ErrSinEmpleado means the caller has no linked employee record.
	ErrSinEmpleado = errors.New("no se encontró empleado asociado al usuario")
	// ErrEmpleadoEnUso blocks deleting an employee that solicitudes still
	// reference.
	ErrEmpleadoEnUso = errors.New("el empleado tiene solicitudes asociadas")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
