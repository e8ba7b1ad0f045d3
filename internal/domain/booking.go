package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses occupy a capacity slot and block a second booking by the same visitor.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusApproved, BookingStatusRejected},
	BookingStatusApproved:  {BookingStatusCancelled},
	BookingStatusRejected:  nil,
	BookingStatusCancelled: nil,
}

func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s BookingStatus) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

func (s BookingStatus) Active() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// RequestTransition reports the status a booking moves to when requested is
// asked for while it is in current. It has no side effects; callers persist
// the returned status themselves.
func RequestTransition(current, requested BookingStatus) (BookingStatus, error) {
	if !current.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	if !requested.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, requested)
	}

	for _, next := range transitions[current] {
		if next == requested {
			return requested, nil
		}
	}

	return "", fmt.Errorf("%w: cannot change status from %s to %s",
		ErrInvalidTransition, current, requested)
}

type Booking struct {
	ID           string        `json:"id"`
	SessionID    string        `json:"session_id"`
	VisitorName  string        `json:"visitor_name"`
	VisitorEmail string        `json:"visitor_email"`
	VisitorPhone *string       `json:"visitor_phone"`
	Notes        *string       `json:"notes"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// BookingDetails is a booking together with the session it belongs to.
type BookingDetails struct {
	Booking Booking `json:"booking"`
	Session Session `json:"session"`
}

type CreateBookingInput struct {
	VisitorName  string
	VisitorEmail string
	VisitorPhone *string
	Notes        *string
}
