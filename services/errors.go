package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrIncorrectCredentials = errors.New("incorrect email or password")
	ErrInactiveUser         = errors.New("inactive user")
	ErrInvalidToken         = errors.New("could not validate credentials")
	ErrSessionNotFound      = errors.New("session not found")

	// Permission errors
	ErrNotEnoughPermissions = errors.New("not enough permissions")
	ErrSuperuserSelfDelete  = errors.New("super users are not allowed to delete themselves")
	ErrRegistrationClosed   = errors.New("open user registration is forbidden on this server")

	// User errors
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("user with this email already exists")
	ErrIncorrectPassword      = errors.New("incorrect password")
	ErrSamePassword           = errors.New("new password cannot be the same as the current one")

	// Item errors
	ErrItemNotFound = errors.New("item not found")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
)
