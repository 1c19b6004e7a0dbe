package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tmreyes/staffboard-api/pkg/auth"
	"github.com/tmreyes/staffboard-api/pkg/models"
)

// UserStore is the user directory: registration and credential checks.
// Emails are case-folded before every lookup, so "A@X.com" and "a@x.com"
// name the same account.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new employee account. Self-registration always gets the
// employee role; managers are provisioned separately.
func (s *UserStore) Register(email, password string) (*models.UserAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password cannot be empty", ErrValidation)
	}

	var existing models.UserAccount
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.UserAccount{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleEmployee,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and returns the matching account. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserStore) Authenticate(email, password string) (*models.UserAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.UserAccount
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
