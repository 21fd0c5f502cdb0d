package models

import "time"

// User represents a registered Gig-Score user
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the authenticated-user record handed back to the client
type Session struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// SessionFor builds the client session record of an authenticated user.
func SessionFor(u *User) Session {
	return Session{
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		IsAuthenticated: true,
	}
}
