package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// CreateShift adds a shift to the schedule. Manager-only at the route level.
func (h *Handler) CreateShift(c *gin.Context) {
	var req struct {
		EmployeeName string `json:"employee_name" binding:"required"`
		Date         string `json:"date" binding:"required"`
		Time         string `json:"time"`
		Position     string `json:"position"`
		Section      string `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	shift, err := h.Shifts.Create(req.EmployeeName, date, req.Time, req.Position, req.Section)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// ListShifts returns shifts, filtered by ?date=YYYY-MM-DD or ?employee=name.
func (h *Handler) ListShifts(c *gin.Context) {
	var (
		shifts []models.Shift
		err    error
	)

	switch {
	case c.Query("date") != "":
		var date time.Time
		date, err = parseDate(c.Query("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		shifts, err = h.Shifts.On(date)
	case c.Query("employee") != "":
		shifts, err = h.Shifts.For(c.Query("employee"))
	default:
		shifts, err = h.Shifts.All()
	}

	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// MyShifts returns the session user's shifts.
func (h *Handler) MyShifts(c *gin.Context) {
	shifts, err := h.Shifts.For(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

type calendarShift struct {
	models.Shift
	Mine bool `json:"mine"`
}

type calendarDay struct {
	Day    string          `json:"day"`
	Shifts []calendarShift `json:"shifts"`
}

// WeekCalendar returns the week containing ?date= (default today), one
// bucket per day, each shift flagged when it belongs to the session user.
// The flag compares names case-insensitively, as the schedule display
// always has.
func (h *Handler) WeekCalendar(c *gin.Context) {
	anchor := time.Now().UTC()
	if q := c.Query("date"); q != "" {
		var err error
		anchor, err = parseDate(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	week, err := h.Shifts.Week(anchor)
	if err != nil {
		h.fail(c, err)
		return
	}

	me := identity(c)
	days := make([]calendarDay, 0, len(week))
	for _, d := range week {
		day := calendarDay{Day: d.Day.Format("2006-01-02"), Shifts: []calendarShift{}}
		for _, sh := range d.Shifts {
			day.Shifts = append(day.Shifts, calendarShift{
				Shift: sh,
				Mine:  strings.EqualFold(sh.EmployeeName, me),
			})
		}
		days = append(days, day)
	}

	c.JSON(http.StatusOK, gin.H{"week": days})
}
