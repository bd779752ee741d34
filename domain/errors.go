package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUserInactive       = errors.New("user account is inactive")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Resource errors
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrIDMismatch        = errors.New("path and body id do not match")
	ErrDuplicateName     = errors.New("name already in use")
	ErrDuplicateEmail    = errors.New("email already in use")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
