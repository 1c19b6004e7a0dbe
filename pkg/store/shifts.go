package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// ShiftStore holds the append-only shift schedule.
type ShiftStore struct {
	db *gorm.DB
}

func NewShiftStore(db *gorm.DB) *ShiftStore {
	return &ShiftStore{db: db}
}

// DaySchedule groups one calendar day's shifts for the week view.
type DaySchedule struct {
	Day    time.Time      `json:"day"`
	Shifts []models.Shift `json:"shifts"`
}

// Create appends a new shift. The date is normalized to its calendar day.
// No role check happens here; the HTTP boundary gates creation to managers.
func (s *ShiftStore) Create(employeeName string, date time.Time, timeLabel, position, section string) (*models.Shift, error) {
	shift := models.Shift{
		ID:           uuid.NewString(),
		EmployeeName: employeeName,
		Date:         models.DayOf(date),
		Time:         timeLabel,
		Position:     position,
		Section:      section,
	}
	if err := s.db.Create(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// All returns every shift in creation order.
func (s *ShiftStore) All() ([]models.Shift, error) {
	var shifts []models.Shift
	err := s.db.Order("created_at").Find(&shifts).Error
	return shifts, err
}

// On returns the shifts of a calendar day, in creation order.
func (s *ShiftStore) On(date time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := s.db.Where("date = ?", models.DayOf(date)).Order("created_at").Find(&shifts).Error
	return shifts, err
}

// For returns the shifts assigned to an employee. The name match is exact and
// case-sensitive.
func (s *ShiftStore) For(employeeName string) ([]models.Shift, error) {
	var shifts []models.Shift
	err := s.db.Where("employee_name = ?", employeeName).Order("created_at").Find(&shifts).Error
	return shifts, err
}

// Week returns seven day buckets starting at the Sunday of the week
// containing anchor. Every shift of the week lands in exactly one bucket.
func (s *ShiftStore) Week(anchor time.Time) ([]DaySchedule, error) {
	start := models.StartOfWeek(anchor)
	end := start.AddDate(0, 0, 7)

	var shifts []models.Shift
	if err := s.db.Where("date >= ? AND date < ?", start, end).Order("created_at").Find(&shifts).Error; err != nil {
		return nil, err
	}

	week := make([]DaySchedule, 7)
	for i := range week {
		week[i] = DaySchedule{Day: start.AddDate(0, 0, i), Shifts: []models.Shift{}}
	}
	for _, sh := range shifts {
		idx := int(sh.Date.Sub(start).Hours() / 24)
		if idx >= 0 && idx < 7 {
			week[idx].Shifts = append(week[idx].Shifts, sh)
		}
	}
	return week, nil
}

// Get returns a shift by id.
func (s *ShiftStore) Get(id string) (*models.Shift, error) {
	var shift models.Shift
	if err := s.db.Where("id = ?", id).First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}
