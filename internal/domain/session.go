package domain

import "time"

type Session struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	MaxBookings int       `json:"max_bookings"`
	IsActive    bool      `json:"is_active"`
	BookingURL  string    `json:"booking_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// BookingCount is the number of bookings holding a capacity slot. It is
	// filled by read queries and never persisted.
	BookingCount int `json:"booking_count"`
}

// Available reports whether a visitor could still book the session at now.
func (s *Session) Available(now time.Time) bool {
	return s.IsActive && s.BookingCount < s.MaxBookings && s.EndTime.After(now)
}

type CreateSessionInput struct {
	Title       string
	Description *string
	Location    *string
	StartTime   time.Time
	EndTime     time.Time
	MaxBookings int
}

// UpdateSessionInput is a partial update; nil fields are left unchanged.
type UpdateSessionInput struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	MaxBookings *int
}

func (in UpdateSessionInput) Apply(s *Session) {
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Description != nil {
		s.Description = in.Description
	}
	if in.Location != nil {
		s.Location = in.Location
	}
	if in.StartTime != nil {
		s.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		s.EndTime = *in.EndTime
	}
	if in.MaxBookings != nil {
		s.MaxBookings = *in.MaxBookings
	}
}

// PublicSession is what an anonymous visitor sees before booking.
type PublicSession struct {
	Session     Session
	IsAvailable bool
}
