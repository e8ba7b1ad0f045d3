package domain

import "time"

// User is a session host.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SignupInput struct {
	Email    string
	Password string
	Name     *string
	Phone    *string
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// TokenPair is issued on signup, login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	Tokens TokenPair
	User   User
}
