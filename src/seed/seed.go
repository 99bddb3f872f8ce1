package seed

import (
	"log"
	"time"

	"github.com/SGRH/SGRH-Backend/src/auth"
	"github.com/SGRH/SGRH-Backend/src/models"
	"gorm.io/gorm"
)

// Seed creates the demo dataset: an admin account and a few employees.
// Every step is idempotent so it can run on every boot of a dev stack.
func Seed(db *gorm.DB) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := auth.HashPassword("admin123")

		newUser := models.UserModel{
			Username: "admin",
			Email:    "admin@rrhh.local",
			Password: hashedPassword,
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create admin user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Sample employees (no owning user, as if created by an admin)
	hoy := time.Now().Format("2006-01-02")
	salarios := map[string]float64{
		"María González": 3200000,
		"Carlos Pérez":   2800000,
		"Lucía Ramírez":  3500000,
	}
	created := 0
	for nombre, salario := range salarios {
		var existing models.EmpleadoModel
		if err := db.Where("nombre = ?", nombre).First(&existing).Error; err == nil {
			continue
		}
		s := salario
		empleado := models.EmpleadoModel{
			Nombre:       nombre,
			FechaIngreso: hoy,
			Salario:      &s,
		}
		if err := db.Create(&empleado).Error; err != nil {
			log.Printf("Failed to create empleado %q: %v\n", nombre, err)
		} else {
			created++
		}
	}
	if created > 0 {
		log.Printf("Created %d sample empleados\n", created)
	} else {
		log.Println("All sample empleados already exist")
	}
}
