package services

import (
	"time"

	"gorm.io/gorm"
)

type TestService struct {
	db *gorm.DB
}

// NewTestService creates a new instance of TestService
func NewTestService(db *gorm.DB) *TestService {
	return &TestService{db: db}
}

// DBTime pings the database and returns its clock.
func (s *TestService) DBTime() (time.Time, error) {
	var now time.Time
	row := s.db.Raw("SELECT NOW()").Row()
	if err := row.Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
