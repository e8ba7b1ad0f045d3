package dto

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Times are RFC3339.
type CreateSessionRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	MaxBookings int     `json:"max_bookings" binding:"required,gt=0"`
}

type UpdateSessionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	MaxBookings *int    `json:"max_bookings" binding:"omitempty,gt=0"`
}

type CreateBookingRequest struct {
	VisitorName  string  `json:"visitor_name" binding:"required"`
	VisitorEmail string  `json:"visitor_email" binding:"required,email"`
	VisitorPhone *string `json:"visitor_phone"`
	Notes        *string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
