package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/auth"
	"github.com/tmreyes/staffboard-api/pkg/models"
	"github.com/tmreyes/staffboard-api/pkg/store"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Users        *store.UserStore
	Shifts       *store.ShiftStore
	Availability *store.AvailabilityStore
	TimeOff      *store.TimeOffStore
	Trades       *store.TradeStore
	Log          *zap.Logger
}

// New builds a Handler with stores over the given database.
func New(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{
		Users:        store.NewUserStore(db),
		Shifts:       store.NewShiftStore(db),
		Availability: store.NewAvailabilityStore(db),
		TimeOff:      store.NewTimeOffStore(db),
		Trades:       store.NewTradeStore(db),
		Log:          log,
	}
}

// AuthMiddleware verifies the JWT token and puts the session identity and
// role on the request context for every handler downstream.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RequireManager gates manager-only operations on the role claim.
func (h *Handler) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleManager) {
			c.JSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger logs each request with zap.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// identity returns the session identity set by AuthMiddleware.
func identity(c *gin.Context) string {
	return c.GetString("email")
}

// fail maps store errors onto HTTP status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateUser),
		errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, store.ErrSelfTrade):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.Log.Error("internal error", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Register creates a new employee account
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"email": user.Email, "role": user.Role})
}

// Login authenticates a user and issues a session token
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := auth.CreateToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}
