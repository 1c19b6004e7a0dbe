package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// TimeOffStore holds time-off requests and their Pending -> Approved|Denied
// lifecycle. Requests are never deleted.
type TimeOffStore struct {
	db *gorm.DB
}

func NewTimeOffStore(db *gorm.DB) *TimeOffStore {
	return &TimeOffStore{db: db}
}

// Request creates a Pending time-off request. A range ending before it
// starts is rejected.
func (s *TimeOffStore) Request(employeeName string, start, end time.Time) (*models.TimeOffRequest, error) {
	if employeeName == "" {
		return nil, fmt.Errorf("%w: employee name cannot be empty", ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	req := models.TimeOffRequest{
		ID:           uuid.NewString(),
		EmployeeName: employeeName,
		StartDate:    start,
		EndDate:      end,
		Status:       models.TimeOffPending,
	}
	if err := s.db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// Decide moves a Pending request to Approved or Denied. Both outcomes are
// terminal; deciding an already-decided request fails and changes nothing.
func (s *TimeOffStore) Decide(id string, decision models.TimeOffStatus) (*models.TimeOffRequest, error) {
	if decision != models.TimeOffApproved && decision != models.TimeOffDenied {
		return nil, fmt.Errorf("%w: decision must be %s or %s", ErrValidation, models.TimeOffApproved, models.TimeOffDenied)
	}

	var req models.TimeOffRequest
	if err := s.db.Where("id = ?", id).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Compare-and-set so two managers deciding at once cannot both win.
	res := s.db.Model(&models.TimeOffRequest{}).
		Where("id = ? AND status = ?", id, models.TimeOffPending).
		Update("status", decision)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: request is %s", ErrInvalidTransition, req.Status)
	}

	req.Status = decision
	return &req, nil
}

// List returns every request in creation order.
func (s *TimeOffStore) List() ([]models.TimeOffRequest, error) {
	var reqs []models.TimeOffRequest
	err := s.db.Order("created_at").Find(&reqs).Error
	return reqs, err
}

// For returns an employee's requests in creation order.
func (s *TimeOffStore) For(employeeName string) ([]models.TimeOffRequest, error) {
	var reqs []models.TimeOffRequest
	err := s.db.Where("employee_name = ?", employeeName).Order("created_at").Find(&reqs).Error
	return reqs, err
}
