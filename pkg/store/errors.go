package store

import "errors"

// Every operation failure is one of these kinds. State is never changed by a
// failing call; callers match with errors.Is and surface a message.
var (
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrSelfTrade          = errors.New("cannot cover your own trade")
)
