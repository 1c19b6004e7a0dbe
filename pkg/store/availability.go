package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// AvailabilityStore keeps one weekly availability row per employee. Day
// entries are free text; no format is imposed.
type AvailabilityStore struct {
	db *gorm.DB
}

func NewAvailabilityStore(db *gorm.DB) *AvailabilityStore {
	return &AvailabilityStore{db: db}
}

// Submit overwrites the employee's availability wholesale, last write wins.
func (s *AvailabilityStore) Submit(a *models.Availability) error {
	a.EmployeeName = strings.TrimSpace(a.EmployeeName)
	if a.EmployeeName == "" {
		return fmt.Errorf("%w: employee name cannot be empty", ErrValidation)
	}

	// Single-query upsert, supported by both postgres and sqlite.
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_name"}},
		UpdateAll: true,
	}).Create(a).Error
}

// Get returns the employee's current availability.
func (s *AvailabilityStore) Get(employeeName string) (*models.Availability, error) {
	var a models.Availability
	if err := s.db.Where("employee_name = ?", employeeName).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns every availability entry, employee name ascending.
func (s *AvailabilityStore) List() ([]models.Availability, error) {
	var all []models.Availability
	err := s.db.Order("employee_name").Find(&all).Error
	return all, err
}
