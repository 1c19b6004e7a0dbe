package models

import "time"

// Role is the capability level attached to a user account.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// TimeOffStatus is the lifecycle state of a time-off request.
// Pending is the only state with outgoing transitions.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "Pending"
	TimeOffApproved TimeOffStatus = "Approved"
	TimeOffDenied   TimeOffStatus = "Denied"
)

// TradeStatus is the lifecycle state of a shift-trade offer.
type TradeStatus string

const (
	TradePending  TradeStatus = "Pending"
	TradeAccepted TradeStatus = "Accepted"
)

// UserAccount represents a registered user. The email is stored lower-cased
// and is the unique key; accounts are immutable after registration.
type UserAccount struct {
	Email        string    `gorm:"primaryKey" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Shift represents a scheduled slot. Shifts are append-only: once created
// they are never edited or deleted.
type Shift struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	EmployeeName string    `gorm:"not null;index" json:"employee_name"`
	Date         time.Time `gorm:"not null;index" json:"date"` // midnight UTC of the calendar day
	Time         string    `json:"time"`                       // free-text label, e.g. "9-5"
	Position     string    `json:"position"`
	Section      string    `json:"section"`
	CreatedAt    time.Time `json:"created_at"`
}

// Availability is an employee's weekly availability, one free-text entry per
// day. Submissions overwrite the whole row; last write wins.
type Availability struct {
	EmployeeName string    `gorm:"primaryKey" json:"employee_name"`
	Monday       string    `json:"monday"`
	Tuesday      string    `json:"tuesday"`
	Wednesday    string    `json:"wednesday"`
	Thursday     string    `json:"thursday"`
	Friday       string    `json:"friday"`
	Saturday     string    `json:"saturday"`
	Sunday       string    `json:"sunday"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TimeOffRequest represents an employee's request for time off. Status moves
// Pending -> Approved|Denied and never changes again.
type TimeOffRequest struct {
	ID           string        `gorm:"primaryKey" json:"id"`
	EmployeeName string        `gorm:"not null;index" json:"employee_name"`
	StartDate    time.Time     `gorm:"not null" json:"start_date"`
	EndDate      time.Time     `gorm:"not null" json:"end_date"`
	Status       TimeOffStatus `gorm:"not null" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ShiftTradeRequest is an employee's offer to give away one of their own
// shifts. CoverEmployee is set exactly when the trade is accepted, at which
// point the trade leaves the pending pool for good.
type ShiftTradeRequest struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	EmployeeName  string      `gorm:"not null;index" json:"employee_name"`
	ShiftID       string      `gorm:"not null" json:"shift_id"`
	Shift         Shift       `gorm:"foreignKey:ShiftID" json:"shift"`
	Status        TradeStatus `gorm:"not null;index" json:"status"`
	CoverEmployee *string     `json:"cover_employee,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// DayOf normalizes a timestamp to midnight UTC of its calendar day. Shift
// dates are stored and queried in this form so that equality means
// "same calendar day".
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns midnight UTC of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := DayOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
