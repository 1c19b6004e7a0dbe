package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// TradeStore holds shift-trade offers. A trade is Pending until another
// employee covers it; acceptance sets the cover and leaves the pending pool
// in the same update, so a trade can never be covered twice.
type TradeStore struct {
	db *gorm.DB
}

func NewTradeStore(db *gorm.DB) *TradeStore {
	return &TradeStore{db: db}
}

// Offer creates a Pending trade for one of the requester's own shifts.
// Offering someone else's shift is rejected; the ownership comparison is
// exact, matching shift assignment lookups.
func (s *TradeStore) Offer(employeeName, shiftID string) (*models.ShiftTradeRequest, error) {
	var shift models.Shift
	if err := s.db.Where("id = ?", shiftID).First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown shift", ErrNotFound)
		}
		return nil, err
	}

	if shift.EmployeeName != employeeName {
		return nil, fmt.Errorf("%w: can only offer your own shifts", ErrValidation)
	}

	trade := models.ShiftTradeRequest{
		ID:           uuid.NewString(),
		EmployeeName: employeeName,
		ShiftID:      shift.ID,
		Shift:        shift,
		Status:       models.TradePending,
	}
	// The shift already exists; only the trade row is written.
	if err := s.db.Omit("Shift").Create(&trade).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

// Accept covers a Pending trade. The cover assignment and the exit from the
// pending pool happen in one compare-and-set update: there is no state where
// the trade is accepted but still listed as pending, and a second accept on
// the same id fails the status precondition.
func (s *TradeStore) Accept(id, coveringEmployee string) (*models.ShiftTradeRequest, error) {
	var trade models.ShiftTradeRequest
	if err := s.db.Preload("Shift").Where("id = ?", id).First(&trade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if coveringEmployee == trade.EmployeeName {
		return nil, ErrSelfTrade
	}

	res := s.db.Model(&models.ShiftTradeRequest{}).
		Where("id = ? AND status = ?", id, models.TradePending).
		Updates(map[string]interface{}{
			"status":         models.TradeAccepted,
			"cover_employee": coveringEmployee,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: trade is %s", ErrInvalidTransition, trade.Status)
	}

	trade.Status = models.TradeAccepted
	trade.CoverEmployee = &coveringEmployee
	return &trade, nil
}

// OpenFor returns the pending pool as seen by an employee: every Pending
// trade offered by someone else, in creation order.
func (s *TradeStore) OpenFor(currentUser string) ([]models.ShiftTradeRequest, error) {
	var trades []models.ShiftTradeRequest
	err := s.db.Preload("Shift").
		Where("status = ? AND employee_name <> ?", models.TradePending, currentUser).
		Order("created_at").Find(&trades).Error
	return trades, err
}

// Pending returns every Pending trade, for the manager review screen.
func (s *TradeStore) Pending() ([]models.ShiftTradeRequest, error) {
	var trades []models.ShiftTradeRequest
	err := s.db.Preload("Shift").
		Where("status = ?", models.TradePending).
		Order("created_at").Find(&trades).Error
	return trades, err
}

// For returns an employee's own offers, any status, in creation order.
func (s *TradeStore) For(employeeName string) ([]models.ShiftTradeRequest, error) {
	var trades []models.ShiftTradeRequest
	err := s.db.Preload("Shift").
		Where("employee_name = ?", employeeName).
		Order("created_at").Find(&trades).Error
	return trades, err
}
