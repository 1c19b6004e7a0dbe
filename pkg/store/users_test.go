package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmreyes/staffboard-api/pkg/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	user, err := users.Register("a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleEmployee, user.Role)

	// Case-folded email with the right password succeeds.
	got, err := users.Authenticate("A@X.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, models.RoleEmployee, got.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	_, err := users.Register("a@x.com", "p1")
	require.NoError(t, err)

	// Same email, different case: still a duplicate, and nothing changes.
	_, err = users.Register("A@X.com", "p2")
	require.ErrorIs(t, err, ErrDuplicateUser)

	var count int64
	require.NoError(t, db.Model(&models.UserAccount{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The original credentials still work.
	_, err = users.Authenticate("a@x.com", "p1")
	assert.NoError(t, err)
}

func TestRegisterEmptyInput(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	_, err := users.Register("", "p1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = users.Register("a@x.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	_, err := users.Register("a@x.com", "p1")
	require.NoError(t, err)

	_, err = users.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate("nobody@x.com", "p1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
