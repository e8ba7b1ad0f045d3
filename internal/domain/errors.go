package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found or inactive")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Admission rejections, in the order the capacity gate checks them.
var (
	ErrSessionEnded     = errors.New("cannot book a session that has already ended")
	ErrSessionFull      = errors.New("session is fully booked")
	ErrDuplicateBooking = errors.New("visitor has already booked this session")
)

var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrUnknownStatus        = errors.New("unknown booking status")
	ErrBookingStatusChanged = errors.New("booking status was changed concurrently")
)

var (
	ErrForbidden          = errors.New("access to this resource is forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
