package dto

import (
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	TokensResponse
	User UserResponse `json:"user"`
}

type SessionResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	MaxBookings  int     `json:"max_bookings"`
	BookingCount int     `json:"booking_count"`
	IsActive     bool    `json:"is_active"`
	BookingURL   string  `json:"booking_url"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// PublicSessionResponse leaves out owner and link details.
type PublicSessionResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	MaxBookings  int     `json:"max_bookings"`
	BookingCount int     `json:"booking_count"`
	IsAvailable  bool    `json:"is_available"`
}

type BookingResponse struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	VisitorName  string          `json:"visitor_name"`
	VisitorEmail string          `json:"visitor_email"`
	VisitorPhone *string         `json:"visitor_phone,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
	Session      SessionResponse `json:"session"`
}

// PublicBookingResponse is returned to the visitor who just booked.
type PublicBookingResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	SessionTitle     string `json:"session_title"`
	SessionStartTime string `json:"session_start_time"`
	SessionEndTime   string `json:"session_end_time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToTokensResponse(t domain.TokenPair) TokensResponse {
	return TokensResponse{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		TokensResponse: ToTokensResponse(r.Tokens),
		User:           ToUserResponse(&r.User),
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Location:     s.Location,
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		MaxBookings:  s.MaxBookings,
		BookingCount: s.BookingCount,
		IsActive:     s.IsActive,
		BookingURL:   s.BookingURL,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPublicSessionResponse(p *domain.PublicSession) PublicSessionResponse {
	s := p.Session
	return PublicSessionResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Location:     s.Location,
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		MaxBookings:  s.MaxBookings,
		BookingCount: s.BookingCount,
		IsAvailable:  p.IsAvailable,
	}
}

func ToBookingResponse(d *domain.BookingDetails) BookingResponse {
	b := d.Booking
	return BookingResponse{
		ID:           b.ID,
		SessionID:    b.SessionID,
		VisitorName:  b.VisitorName,
		VisitorEmail: b.VisitorEmail,
		VisitorPhone: b.VisitorPhone,
		Notes:        b.Notes,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
		Session:      ToSessionResponse(&d.Session),
	}
}

func ToPublicBookingResponse(d *domain.BookingDetails) PublicBookingResponse {
	return PublicBookingResponse{
		ID:               d.Booking.ID,
		Status:           string(d.Booking.Status),
		CreatedAt:        d.Booking.CreatedAt.Format(time.RFC3339),
		SessionTitle:     d.Session.Title,
		SessionStartTime: d.Session.StartTime.Format(time.RFC3339),
		SessionEndTime:   d.Session.EndTime.Format(time.RFC3339),
	}
}
