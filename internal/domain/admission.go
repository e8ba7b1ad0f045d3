package domain

import (
	"strings"
	"time"
)

// SessionSnapshot is what the capacity gate needs to know about a session,
// read in the same transaction that will insert the booking.
type SessionSnapshot struct {
	Found       bool
	IsActive    bool
	EndTime     time.Time
	MaxBookings int
	ActiveCount int
	// ActiveVisitors holds the emails of bookings in ActiveStatuses.
	ActiveVisitors []string
}

// NewSessionSnapshot builds a snapshot from a loaded session (nil when the
// lookup found nothing) and the visitor emails of its active bookings.
func NewSessionSnapshot(s *Session, activeVisitors []string) SessionSnapshot {
	if s == nil {
		return SessionSnapshot{}
	}
	return SessionSnapshot{
		Found:          true,
		IsActive:       s.IsActive,
		EndTime:        s.EndTime,
		MaxBookings:    s.MaxBookings,
		ActiveCount:    len(activeVisitors),
		ActiveVisitors: activeVisitors,
	}
}

// EvaluateAdmission decides whether visitorEmail may book the session. On
// success the new booking starts as PENDING. Checks run in a fixed order so
// the caller always gets the most specific rejection: existence, end time,
// capacity, then duplicates.
func EvaluateAdmission(snap SessionSnapshot, visitorEmail string, now time.Time) (BookingStatus, error) {
	if !snap.Found || !snap.IsActive {
		return "", ErrSessionNotFound
	}
	if !snap.EndTime.After(now) {
		return "", ErrSessionEnded
	}
	if snap.ActiveCount >= snap.MaxBookings {
		return "", ErrSessionFull
	}

	email := NormalizeEmail(visitorEmail)
	for _, v := range snap.ActiveVisitors {
		if NormalizeEmail(v) == email {
			return "", ErrDuplicateBooking
		}
	}

	return BookingStatusPending, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
