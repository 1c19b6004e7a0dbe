package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

// SubmitAvailability overwrites the session user's weekly availability.
func (h *Handler) SubmitAvailability(c *gin.Context) {
	var req struct {
		Monday    string `json:"monday"`
		Tuesday   string `json:"tuesday"`
		Wednesday string `json:"wednesday"`
		Thursday  string `json:"thursday"`
		Friday    string `json:"friday"`
		Saturday  string `json:"saturday"`
		Sunday    string `json:"sunday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := models.Availability{
		EmployeeName: identity(c),
		Monday:       req.Monday,
		Tuesday:      req.Tuesday,
		Wednesday:    req.Wednesday,
		Thursday:     req.Thursday,
		Friday:       req.Friday,
		Saturday:     req.Saturday,
		Sunday:       req.Sunday,
	}
	if err := h.Availability.Submit(&a); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// MyAvailability returns the session user's current availability.
func (h *Handler) MyAvailability(c *gin.Context) {
	a, err := h.Availability.Get(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListAvailability returns everyone's availability, name ascending.
// Manager-only at the route level.
func (h *Handler) ListAvailability(c *gin.Context) {
	all, err := h.Availability.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": all})
}

// RequestTimeOff files a time-off request for the session user.
func (h *Handler) RequestTimeOff(c *gin.Context) {
	var req struct {
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	r, err := h.TimeOff.Request(identity(c), start, end)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// MyTimeOff returns the session user's time-off requests.
func (h *Handler) MyTimeOff(c *gin.Context) {
	reqs, err := h.TimeOff.For(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// ListTimeOff returns every time-off request. Manager-only at the route level.
func (h *Handler) ListTimeOff(c *gin.Context) {
	reqs, err := h.TimeOff.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// DecideTimeOff approves or denies a pending request. Manager-only at the
// route level.
func (h *Handler) DecideTimeOff(c *gin.Context) {
	var req struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.TimeOff.Decide(c.Param("id"), models.TimeOffStatus(req.Decision))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// OfferTrade puts one of the session user's shifts up for trade.
func (h *Handler) OfferTrade(c *gin.Context) {
	var req struct {
		ShiftID string `json:"shift_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.Trades.Offer(identity(c), req.ShiftID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, trade)
}

// OpenTrades lists trades the session user could cover: every pending offer
// from someone else.
func (h *Handler) OpenTrades(c *gin.Context) {
	trades, err := h.Trades.OpenFor(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// MyTrades lists the session user's own offers, any status.
func (h *Handler) MyTrades(c *gin.Context) {
	trades, err := h.Trades.For(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// AcceptTrade covers a pending trade with the session user.
func (h *Handler) AcceptTrade(c *gin.Context) {
	trade, err := h.Trades.Accept(c.Param("id"), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// PendingTrades lists every pending trade. Manager-only at the route level.
func (h *Handler) PendingTrades(c *gin.Context) {
	trades, err := h.Trades.Pending()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}
